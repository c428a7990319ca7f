// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package laws

import (
	"log/slog"
	"math/rand/v2"

	"github.com/wdamron/prelude"
)

// Report holds one Result per law, in law-set order.
type Report struct {
	Subject string
	Results []Result
}

// Passed reports whether every law held. An empty report passes.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

func (r Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Checker evaluates law sets against instances with generated samples.
type Checker struct {
	cfg    Config
	logger *slog.Logger
}

// NewChecker creates a Checker. If logger is nil, slog.Default() is used.
// An invalid cfg is replaced by DefaultConfig.
func NewChecker(cfg Config, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("using default law checker config", slog.String("error", err.Error()))
		cfg = DefaultConfig()
	}
	return &Checker{cfg: cfg, logger: logger}
}

func (c *Checker) Config() Config { return c.cfg }

// Check evaluates every law of set against inst, comparing with eq, on up to
// Config.Samples draws from gen. Evaluation of a law stops at its first
// counterexample. Each law draws from its own stream seeded by (Seed, law index),
// so a law's samples do not depend on the laws before it.
func Check[C, A any](c *Checker, subject string, set LawSet[C, A], inst C, eq prelude.Equal[A], gen Gen[A]) Report {
	report := Report{Subject: subject, Results: make([]Result, 0, set.Len())}
	set.Range(func(i int, law Law[C, A]) bool {
		rng := rand.New(rand.NewPCG(c.cfg.Seed, uint64(i)))
		samples := make([]A, law.Arity)
		var res Result
		trials := 0
		for trials < c.cfg.Samples {
			for j := range samples {
				samples[j] = gen(rng)
			}
			trials++
			if res = law.Run(inst, eq, samples); !res.Passed {
				break
			}
		}
		res.Trials = trials
		if res.Passed {
			c.logger.Debug("law held",
				slog.String("subject", subject),
				slog.String("law", law.Name),
				slog.Int("trials", trials))
		} else {
			c.logger.Warn("law violated",
				slog.String("subject", subject),
				slog.String("law", law.Name),
				slog.String("reason", res.Reason),
				slog.Any("samples", res.Samples),
				slog.Int("trial", trials))
		}
		report.Results = append(report.Results, res)
		return true
	})
	return report
}

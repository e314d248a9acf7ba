// SPDX-License-Identifier: MIT

// Package matbench is a small, self-verifying dense integer matrix
// multiplication benchmark.
//
// 🚀 What is matbench?
//
//	A repeatable CPU workload with a built-in correctness check:
//		• Dense row-major int buffers with explicit Release
//		• A fixed-order accumulate kernel: C[x,y] += Σ A[i,y]·B[x,i]
//		• A harness that runs limit passes and verifies the final product
//		• Per-pass timings, MAC/s throughput and a host CPU snapshot
//		• Optional cross-check of the product against gonum
//
// ✨ Why matbench?
//
//   - Deterministic: all-ones operands, so every output cell must equal width
//   - Honest failures: typed errors for usage, allocation and verification
//   - Pluggable: swap the kernel, observe passes, add your own checker
//
// Layout:
//
//	matrix/           - Dense buffer, validators and the MulInto kernel
//	bench/            - Run harness, Verify, Report encoders (text, JSON, YAML)
//	internal/hostinfo - GOOS/GOARCH/CPU feature snapshot
//	internal/oracle   - float64 reference product via gonum
//	cmd/matbench      - command line: matbench <limit> <width> <height>
//
// Quick start:
//
//	go install github.com/katalvlaran/matbench/cmd/matbench@latest
//	matbench 10 512 512
package matbench

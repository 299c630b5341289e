// Package work provides the fixed worker pool consumed by the parallel
// synchronization backend.
//
// A [Pool] starts a stable set of worker goroutines at construction time and
// never changes its membership afterwards. Tasks submitted with
// [Pool.Submit] are executed by whichever worker picks them up first.
// Workers have dense indices in [0, Size), and code running on a worker can
// recover its own index with [Pool.WorkerIndex], which is what per-worker
// storage is built on.
package work

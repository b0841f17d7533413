// Package stepviz records algorithm executions as replayable sequences of
// state snapshots.
//
// Every instrumented algorithm (sorts, searches, heap and tree operations, a
// depth-first maze search) writes one Step per atomic operation into a
// trace.Recorder. The finished trace.Trace is immutable and can be rendered,
// exported or replayed by a playback.Controller at a chosen Speed.
//
// Layout:
//
//	trace/         Step, Trace, Recorder and the step distance used to check granularity
//	input/         seeded generators, input profiles and validation
//	sorting/       comparison sorts (bubble … intro)
//	distribution/  counting, radix, bucket and pigeonhole sorts
//	search/        linear and binary search
//	structure/     binary search tree and binary heaps
//	maze/          wall grids and depth-first search
//	registry/      algorithm table, Run, Generate and Verify
//	playback/      clock driven cursor over a Trace
//	session/       one user's algorithm, input, trace and controller
//	render/        terminal, table and JSON/YAML output
//	config/        viper backed settings
//	observability/ logrus logger and Prometheus metrics
//	cmd/stepviz/   the command line tool
//
// Quick start:
//
//	alg, _ := registry.Default().Get(registry.Quick)
//	tr, err := registry.Run(alg, registry.Input{Values: []float64{5, 2, 9, 1}})
//	if err != nil {
//		// errors.Is(err, input.ErrInvalidInput)
//	}
//	fmt.Println(tr.Last().Values) // [1 2 5 9]
package stepviz

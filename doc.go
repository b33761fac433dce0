// Package maneuvergen generates benchmark instances for scheduling switch
// maneuvers during the restoration of electric power distribution networks.
//
// An instance has n switches, each needing one maneuver, and m mobile teams.
// Each switch has a technology (manual or remote) and a maneuver duration.
// Each team has a travel-time matrix over its start location and the
// switches. A precedence graph says which maneuvers must finish before others
// start. Its order strength (density) is the knob for instance difficulty.
//
// Packages, leaf first:
//
//	rng/         seeded randomness source with derived independent streams
//	closure/     transitive-closure relation and order-strength evaluation
//	precedence/  stage partition, five precedence topologies, DAG queries, DOT export
//	travel/      travel-time matrices and node-weighted triangular relaxation
//	instance/    config, assembler, text writer/reader, invariant checks
//	benchmark/   named instance groups generated in batch
//	config/      YAML/JSON + environment settings (koanf)
//	logger/      logging facade over zerolog
//	metrics/     Prometheus collectors exported to a textfile
//	cmd/         cobra CLI: generate, benchmark, inspect
//
// Quick start:
//
//	cfg := instance.DefaultConfig(10, 2)
//	cfg.Precedence = precedence.StagedSpec(precedence.KindIntree, 3)
//	cfg.Triangular, cfg.IntegerOnly, cfg.Seed = true, true, 42
//	in, err := instance.Generate(ctx, cfg)
//	if err != nil { ... }
//	err = instance.WriteFile("inst.txt", in)
//
// From the shell:
//
//	maneuvergen generate --filename inst --switches 10 --teams 2 \
//	    --triangular --integer-only --precedence intree --stages 3
//	maneuvergen benchmark ./out --dot
//	maneuvergen inspect inst.txt --triangular
package maneuvergen

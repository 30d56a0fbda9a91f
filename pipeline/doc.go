// Package pipeline drives the per-instance load → build → reconstruct →
// verify flow and fans it out over a directory of instances.
//
// BuildAndVerify handles one instance: it loads the graph files, builds
// the ILP model, then verifies every solution file it can discover
// (<instance-name>*.sol under the solutions directory, plus a sol.txt
// inside the instance directory). A missing solution is not an error —
// the model is still returned and verification is simply skipped.
// Infeasible or objective-mismatching solutions come back as structured
// outcomes; the caller decides whether they are fatal.
//
// Run scans an instances directory for subdirectories holding .dat
// files, skips hidden entries and instances above the configured node
// limit, and processes the rest concurrently. Instances are pure
// functions of their own input files, so workers share nothing beyond
// the pool limit.
package pipeline

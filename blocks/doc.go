// Package blocks is the reusable block library: arithmetic process
// blocks generic over every admissible edge kind, and drift-free
// signal generators.
//
// Process blocks that combine a signal with a parameter of a possibly
// different scalar kind (Gain, Bias) are written once against the
// block.Applier contract and instantiated by generated code with the
// promoted output kind. The promotion is resolved at composition time
// via signal.Promote; nothing is decided at tick time.
package blocks

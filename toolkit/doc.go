// Package toolkit defines the contract between the molfp dispatch layer and
// a cheminformatics toolkit binding.
//
// The fingerprint algorithms themselves (circular substructure hashing,
// torsion enumeration, atom-pair encoding, MACCS key matching, ...) live in
// the toolkit, not here. A binding implements Toolkit; molfp selects an
// Algorithm, merges parameters, and hands the call over.
//
// Bindings register themselves as the process-wide default:
//
//	toolkit.SetDefault(myBinding)
//	fp, err := molfp.ComputeSMILES("CCO")
//
// or are injected per call via molfp.WithToolkit.
//
// The toolkittest subpackage provides a deterministic simulated toolkit for
// tests.
package toolkit

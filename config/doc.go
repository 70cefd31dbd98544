// Package config loads the YAML batch description shared by the augment and
// convert commands.
//
// The top level (workers, log, metrics, xs_of_int) is decoded, defaulted and
// validated by Load; any problem there is fatal for the batch. Every other
// top-level key is an entry, kept undecoded until File.Entry or
// File.Conversion asks for it, so a malformed entry fails only itself.
//
// Defaults come from `default:"..."` tags (creasty/defaults) and rules from
// `validate:"..."` tags (go-playground/validator). Validation messages use
// the YAML key path, e.g. "mo100.nrg.fit_stop must be >= fit_start".
package config

// Package batch connects the YAML configuration and the file system to the
// augmentation pipeline: ConfigSource turns entries into augment.Jobs,
// FileSink writes the augmented table and the plots, and Converter runs the
// unit-conversion entries.
//
// Relative paths in entries are resolved against BaseDir (the working
// directory when empty).
package batch

// Package descriptor persists the publication Descriptor handed to the
// external publisher.
//
// FileRepository writes YAML or JSON to a file (or any io.Writer) and
// reads it back, detecting the encoding from the file extension.
package descriptor

package copier

// 📊 Status represents the result of processing one setup file
type Status int

const (
	StatusUnknown          Status = iota
	StatusCopied                  // File was copied into its car folder
	StatusNoCarCode               // Filename has too few tokens to carry a car code
	StatusNoMatchingFolder        // No destination folder is named after the car code
	StatusCopyFailed              // Copy was attempted and an I/O error occurred
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusNoCarCode:
		return "no_car_code"
	case StatusNoMatchingFolder:
		return "no_matching_folder"
	case StatusCopyFailed:
		return "copy_failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome records what happened to a single setup file. Exactly one
// Outcome is produced per eligible source file, in processing order.
type Outcome struct {
	File    string // Source filename
	CarCode string // Extracted car code, empty when the name could not be parsed
	Folder  string // Matched destination folder name, empty when unmatched
	Status  Status // Final status for this file
	Err     error  // I/O error detail, set only for StatusCopyFailed
}

// Package core provides the analytics engine for UIDAI enrolment and update data.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
// Analysts can quote the code when a run or an upload fails.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Missing column: A mandatory or count column is absent
//	         Action: Check the file has state, district, pincode and its count columns
//	         Patterns: "missing mandatory column", "missing column"
//
//	VAL002 - Invalid pincode: Pincodes must be exactly six digits
//	         Action: Fix the pincode column in the source extract
//	         Patterns: "invalid pincode"
//
//	VAL003 - Non-numeric count: A count cell is not a number or is negative
//	         Action: Count columns must hold non-negative numbers
//	         Patterns: "non-numeric"
//
//	VAL004 - Unrecognized file: No enrolment, biometric or demographic columns
//	         Action: Check the file is an enrolment or update extract
//	         Patterns: "unrecognized file category"
//
//	VAL005 - Count overflow: Totals exceed the supported range
//	         Action: Check count columns for corrupt values
//	         Patterns: "count overflow"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds maximum size limit
//	FILE002 - Invalid CSV: File is not a valid CSV
//	FILE003 - Invalid Parquet: File is not a readable Parquet file
//	FILE004 - No file: No file was selected
//	FILE005 - Empty file: The file has no header row
//	FILE006 - Unsupported type: Only .csv, .zip and .parquet are read
//	FILE007 - Bad upload: The multipart form could not be read
//	FILE008 - Unreadable: The file or directory could not be opened
//	FILE009 - Empty directory: The directory holds no supported files
//
// # Archive Errors (ARC001-ARC099)
//
//	ARC001 - No CSV files: The archive holds no CSV entries
//	ARC002 - Invalid archive: The archive could not be opened
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - System busy: Too many analyses in progress
//	RUN002 - Not found: The analysis has expired or never existed
//	RUN003 - Request cancelled
//	RUN004 - Request timeout
//	RUN005 - No summary: The batch processor has not written a summary yet
//
// # Access Errors (AUTH001-AUTH099, RATE001-RATE099)
//
//	AUTH001 - Missing API key
//	AUTH002 - Invalid API key
//	RATE001 - Too many analyses submitted from one client
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches.
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns are listed first.
package core

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Validation Errors (VAL001-VAL005)
	// =========================================================================
	{
		pattern: "missing mandatory column",
		msg: UserMessage{
			Message: "A mandatory column is missing",
			Action:  "Check the file has state, district and pincode columns",
			Code:    "VAL001",
		},
	},
	{
		pattern: "missing column",
		msg: UserMessage{
			Message: "An expected column is missing",
			Action:  "Check the column headers match the extract format",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid pincode",
		msg: UserMessage{
			Message: "Some pincodes are not six digits",
			Action:  "Fix the pincode column in the source extract",
			Code:    "VAL002",
		},
	},
	{
		pattern: "non-numeric",
		msg: UserMessage{
			Message: "A count column contains text",
			Action:  "Remove text from count columns",
			Code:    "VAL003",
		},
	},
	{
		pattern: "unrecognized file category",
		msg: UserMessage{
			Message: "The file is not an enrolment, biometric or demographic extract",
			Action:  "Check the file's count columns",
			Code:    "VAL004",
		},
	},
	{
		pattern: "count overflow",
		msg: UserMessage{
			Message: "Counts exceed the supported range",
			Action:  "Check count columns for corrupt values",
			Code:    "VAL005",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE009)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Split the extract into smaller files",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "Upload exceeds maximum size limit",
			Action:  "Submit fewer or smaller files",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure file is comma-separated with consistent columns",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid parquet",
		msg: UserMessage{
			Message: "File is not a readable Parquet file",
			Action:  "Re-export the extract as flat Parquet or CSV",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select at least one CSV, ZIP or Parquet file",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file is empty",
			Action:  "Please provide a file with a header row and data rows",
			Code:    "FILE005",
		},
	},
	{
		pattern: "unsupported file type",
		msg: UserMessage{
			Message: "Unsupported file type",
			Action:  "Use .csv, .zip or .parquet files",
			Code:    "FILE006",
		},
	},

	{
		pattern: "multipart",
		msg: UserMessage{
			Message: "The upload could not be read",
			Action:  "Send the files as multipart/form-data in the \"files\" field",
			Code:    "FILE007",
		},
	},

	{
		pattern: "unreadable",
		msg: UserMessage{
			Message: "The file could not be read",
			Action:  "Check the path exists and is readable",
			Code:    "FILE008",
		},
	},
	{
		pattern: "no supported files",
		msg: UserMessage{
			Message: "The directory holds no supported files",
			Action:  "Point the processor at .csv, .zip or .parquet files",
			Code:    "FILE009",
		},
	},

	// =========================================================================
	// Archive Errors (ARC001-ARC002)
	// =========================================================================
	{
		pattern: "no csv files",
		msg: UserMessage{
			Message: "The archive contains no CSV files",
			Action:  "Check the archive contents",
			Code:    "ARC001",
		},
	},
	{
		pattern: "invalid archive",
		msg: UserMessage{
			Message: "The archive could not be opened",
			Action:  "Re-create the ZIP archive and try again",
			Code:    "ARC002",
		},
	},

	// =========================================================================
	// Run Errors (RUN001-RUN005)
	// =========================================================================
	{
		pattern: "too many analyses",
		msg: UserMessage{
			Message: "System is busy processing other analyses",
			Action:  "Please wait a moment and try again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "analysis not found",
		msg: UserMessage{
			Message: "Analysis not found",
			Action:  "The analysis may have expired. Please upload the files again",
			Code:    "RUN002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "RUN003",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try fewer or smaller files",
			Code:    "RUN004",
		},
	},
	{
		pattern: "summary not available",
		msg: UserMessage{
			Message: "No summary has been generated yet",
			Action:  "Run the processor to produce a summary",
			Code:    "RUN005",
		},
	},

	// =========================================================================
	// Access Errors (AUTH001-AUTH002, RATE001)
	// =========================================================================
	{
		pattern: "missing api key",
		msg: UserMessage{
			Message: "An API key is required",
			Action:  "Send your key in the X-API-Key header",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "invalid api key",
		msg: UserMessage{
			Message: "The API key was not accepted",
			Action:  "Check the key with your administrator",
			Code:    "AUTH002",
		},
	},
	{
		pattern: "rate limit exceeded",
		msg: UserMessage{
			Message: "Too many analyses submitted",
			Action:  "Wait a minute before submitting again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, a generic fallback message with code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	return MapMessage(err.Error())
}

// MapMessage looks up the catalog entry for a message, such as the text of
// a validation issue.
func MapMessage(msg string) UserMessage {
	msg = strings.ToLower(msg)

	for _, ep := range errorPatterns {
		if strings.Contains(msg, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

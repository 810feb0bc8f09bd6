// Package fileparse guesses client and project names from external file names.
package fileparse

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Result is a best-effort (client, project) name guess. Empty string means the
// name could not be determined.
type Result struct {
	ClientName  string
	ProjectName string
}

// Complete reports whether both names were parsed, i.e. the file can drive
// project auto-creation.
func (r Result) Complete() bool {
	return r.ClientName != "" && r.ProjectName != ""
}

var separatorRuns = regexp.MustCompile(`[-_\s]+`)

// ParseFileName applies the ordered filename heuristic, first match wins:
//
//  1. Names starting with "invoice" or "proposal": tokenize on runs of '-', '_'
//     or whitespace; with at least 3 tokens, token 1 is the client and token 2
//     the project ("Invoice_Acme_Roof_2024.pdf" -> Acme / Roof).
//  2. Names containing '-' or '_' (preferring '-' when both appear): split on
//     that separator; the first token is the client, the rest joined with
//     spaces form the project ("Acme - Roof Replacement.pdf" -> Acme / Roof
//     Replacement).
//  3. Otherwise split on whitespace; with at least two words the client is the
//     first two words and the project the remainder, or the second word alone
//     when there are exactly two.
//
// Anything else yields an empty Result.
func ParseFileName(fileName string) Result {
	name := strings.TrimSpace(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	if name == "" {
		return Result{}
	}

	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "invoice") || strings.HasPrefix(lower, "proposal") {
		tokens := splitNonEmpty(separatorRuns.Split(name, -1))
		if len(tokens) >= 3 {
			return Result{ClientName: tokens[1], ProjectName: tokens[2]}
		}
	}

	if strings.ContainsAny(name, "-_") {
		sep := "_"
		if strings.Contains(name, "-") {
			sep = "-"
		}
		tokens := splitNonEmpty(strings.Split(name, sep))
		if len(tokens) >= 2 {
			return Result{
				ClientName:  tokens[0],
				ProjectName: strings.Join(tokens[1:], " "),
			}
		}
		return Result{}
	}

	words := strings.Fields(name)
	if len(words) >= 2 {
		res := Result{ClientName: words[0] + " " + words[1]}
		if len(words) == 2 {
			res.ProjectName = words[1]
		} else {
			res.ProjectName = strings.Join(words[2:], " ")
		}
		return res
	}

	return Result{}
}

func splitNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

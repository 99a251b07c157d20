// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagespec parses page-selection arguments like "all" or "1,3,5-7".
package pagespec

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSet is a parsed page selection. When All is true Pages is empty and the
// set covers every page of the document.
type PageSet struct {
	All   bool
	Pages []int
}

// Parse reads a page spec: the word "all" (case-insensitive), or a
// comma-separated list of positive page numbers and inclusive hyphenated
// ranges. "1,3,5-7" yields pages 1, 3, 5, 6 and 7.
func Parse(spec string) (PageSet, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return PageSet{}, fmt.Errorf("empty page spec")
	}
	if strings.EqualFold(trimmed, "all") {
		return PageSet{All: true}, nil
	}

	var pages []int
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return PageSet{}, fmt.Errorf("empty token in page spec %q", spec)
		}

		if start, end, ok := strings.Cut(token, "-"); ok {
			lo, err := parsePage(start)
			if err != nil {
				return PageSet{}, fmt.Errorf("invalid range %q: %w", token, err)
			}
			hi, err := parsePage(end)
			if err != nil {
				return PageSet{}, fmt.Errorf("invalid range %q: %w", token, err)
			}
			if hi < lo {
				return PageSet{}, fmt.Errorf("descending range %q", token)
			}
			for p := lo; p <= hi; p++ {
				pages = append(pages, p)
			}
			continue
		}

		p, err := parsePage(token)
		if err != nil {
			return PageSet{}, fmt.Errorf("invalid page %q: %w", token, err)
		}
		pages = append(pages, p)
	}

	return PageSet{Pages: pages}, nil
}

func parsePage(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if p < 1 {
		return 0, fmt.Errorf("pages are 1-based")
	}
	return p, nil
}

// Resolve expands the set against a document's page count. "all" becomes
// every page; explicit pages beyond the document are dropped.
func (s PageSet) Resolve(pageCount int) []int {
	if s.All {
		pages := make([]int, 0, pageCount)
		for p := 1; p <= pageCount; p++ {
			pages = append(pages, p)
		}
		return pages
	}
	pages := make([]int, 0, len(s.Pages))
	for _, p := range s.Pages {
		if p <= pageCount {
			pages = append(pages, p)
		}
	}
	return pages
}

// String renders the set back into spec form, for progress messages.
func (s PageSet) String() string {
	if s.All {
		return "all"
	}
	parts := make([]string, len(s.Pages))
	for i, p := range s.Pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

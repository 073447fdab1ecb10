package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/shopinsight"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	si, err := deps.Insights.BuildInsight(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, si)
	}
	printInsight(deps.Stdout, si)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printInsight writes a human-readable summary of si.
func printInsight(w io.Writer, si *shopinsight.StoreInsight) {
	fmt.Fprintf(w, "Store:          %s\n", si.StoreURL)
	fmt.Fprintf(w, "Products:       %d\n", len(si.Products))
	fmt.Fprintf(w, "Hero products:  %d\n", len(si.HeroProducts))
	for _, p := range si.HeroProducts {
		fmt.Fprintf(w, "  - %s  %s\n", p.Title, p.URL)
	}
	fmt.Fprintf(w, "Privacy policy: %s\n", presence(si.PrivacyPolicy))
	fmt.Fprintf(w, "Return policy:  %s\n", presence(si.ReturnPolicy))
	fmt.Fprintf(w, "About:          %s\n", presence(si.About))
	fmt.Fprintf(w, "FAQs:           %d\n", len(si.FAQs))
	printMap(w, "Social", si.SocialHandles)
	printMap(w, "Links", si.ImportantLinks)
	if len(si.Contacts.Emails) > 0 {
		fmt.Fprintf(w, "Emails:         %s\n", strings.Join(si.Contacts.Emails, ", "))
	}
	if len(si.Contacts.Phones) > 0 {
		fmt.Fprintf(w, "Phones:         %s\n", strings.Join(si.Contacts.Phones, ", "))
	}
}

func printMap(w io.Writer, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(w, "  %-14s %s\n", k, m[k])
	}
}

func presence(text *string) string {
	if text == nil {
		return "not found"
	}
	return fmt.Sprintf("%d characters", len(*text))
}

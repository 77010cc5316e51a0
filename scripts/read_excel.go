//go:build ignore
// +build ignore

// This script prints the field/value rows of an Excel status snapshot.
//
//	go run scripts/read_excel.go status.xlsx
package main

import (
	"fmt"
	"os"

	"sysprobe/internal/report/excel"
)

func main() {
	path := "status.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fields, err := excel.ReadFields(path)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if len(fields) == 0 {
		fmt.Printf("⚠️  Sheet %s in %s has no fields\n", excel.SheetName, path)
		return
	}

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s\n", excel.SheetName)
	fmt.Println("═══════════════════════════════════════")
	for _, field := range fields {
		fmt.Printf("  %-24s %s\n", field.Name, field.Value)
	}
	fmt.Println()
	fmt.Printf("✅ %d fields read from %s\n", len(fields), path)
}

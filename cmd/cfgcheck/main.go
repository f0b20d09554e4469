// Command cfgcheck reads a damage scaler settings file and reports every line
// the overlay would skip, followed by the file as the overlay would save it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/billie-coop/scaler/internal/settings"
)

func main() {
	write := flag.Bool("write", false, "rewrite the file in normalized form")
	legacy := flag.Bool("legacy", false, "use the single multiplier layout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: cfgcheck [-write] [-legacy] [path]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := settings.DefaultPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	schema := settings.Multipliers
	if *legacy {
		schema = settings.Legacy
	}

	rec, report := settings.LoadReport(schema, path)

	fmt.Printf("File: %s (%s)\n", path, schema.Name)
	switch {
	case report.Missing:
		fmt.Println("Not found, defaults apply")
	case report.Err != nil:
		fmt.Printf("Unreadable, defaults apply: %v\n", report.Err)
	}
	fmt.Printf("Applied: %d  Skipped: %d\n", len(report.Applied), len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Printf("  %s\n", issue)
	}

	fmt.Println("─────────")
	fmt.Print(settings.Format(rec))

	if !*write {
		if !report.OK() {
			os.Exit(1)
		}
		return
	}

	if err := settings.Save(path, rec); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

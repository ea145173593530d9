// Command xlsx2csv converts workbook sheets into the CSV files the dashboard reads.
//
// Usage: xlsx2csv input.xlsx [sheet_name]
package main

import (
	"fmt"
	"log"
	"os"

	"farm-dashboard/util"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: xlsx2csv input.xlsx [sheet_name]")
		os.Exit(1)
	}
	sheet := ""
	if len(os.Args) > 2 {
		sheet = os.Args[2]
	}

	written, err := util.ConvertWorkbookToCSV(os.Args[1], sheet)
	for _, path := range written {
		fmt.Println("Wrote", path)
	}
	if err != nil {
		log.Fatalf("[xlsx2csv] %v", err)
	}
}

// inspect prints the schema and a summary of an event sample.
// Usage:
/*
  $GOPATH/bin/inspect -events=/tmp/events.gz
*/

package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/CMSDAS/root-close-out/core/utils"
)

func main() {
	flagEvents := flag.String("events", "./testdata/events", "Event sample file")
	flag.Parse()

	ds := utils.LoadEventsOrDie(*flagEvents)

	schema := ds.Schema()
	cols := make([]string, 0, len(schema))
	for name := range schema {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	for _, name := range cols {
		fmt.Printf("%s: %v\n", name, schema[name])
	}

	d, e := utils.DescribeEvents(ds)
	if e != nil {
		log.Fatalf("Cannot describe %s: %v", *flagEvents, e)
	}
	fmt.Print(d)
}

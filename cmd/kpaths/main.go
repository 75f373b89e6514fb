// Command kpaths ranks the routes between two vertices of a weighted
// directed graph, shortest first.
//
//	kpaths --vertices S,A,B,T \
//	  --edge S,B:A,T:1 --edge S:B:3 --edge S:T:10:direct --edge A:T:5 \
//	  --group-weight direct=2 --source S --target T -k 3
//
//	kpaths --demo --extras -k 10 --output yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	// Ctrl+C stops the ranking loop between two paths.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand(ctx, version).Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

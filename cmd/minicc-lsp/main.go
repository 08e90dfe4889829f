// minicc-lsp is a minimal Language Server Protocol front end for the
// semantic analyzer, communicating over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/minicc/minicc/internal/lspsrv"
)

const name = "minicc-lsp"

var version = "dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("%s %s\n", name, version)
			os.Exit(0)
		case "--help", "-h":
			fmt.Printf("%s - MiniC language server\n\nCommunicates over stdio using the Language Server Protocol.\n", name)
			os.Exit(0)
		}
	}

	commonlog.Configure(1, nil)

	server := lspsrv.NewServer(name, version)
	if err := server.RunStdio(); err != nil {
		commonlog.GetLogger(name).Errorf("server error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/bioseqlab/seqfeat/cmd"
)

func main() {
	cmd.Execute()
}

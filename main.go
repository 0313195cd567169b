package main

import "github.com/spcommon/caml-data-apis/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/hotglue/target-salesforce/cmd"

func main() {
	cmd.Execute()
}

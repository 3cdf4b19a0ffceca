package main

import "github.com/bytsmartz/leads_backend/cmd"

func main() {
	cmd.Execute()
}

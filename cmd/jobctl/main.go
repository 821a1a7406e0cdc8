package main

import "github.com/Bemnet-Y/job-portal-client/internal/cli"

func main() {
	cli.Execute()
}

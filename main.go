package main

import "shopzada-etl/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/frahmantamala/dorm-management/cmd"

func main() {
	cmd.Execute()
}

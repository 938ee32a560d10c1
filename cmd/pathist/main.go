// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

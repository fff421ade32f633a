// Command lgf-compute reads a flow network and prints its maximum flow value.
//
// Usage:
//
//	lgf-compute -method hl -filename network.lgf
//	lgf-compute -method parallel -workers 8 -float -filename gaussian.lgf
//	lgf-compute -format dimacs -filename problem.max -o solved.lgf
//
// The network must carry a capacity arc map and "source"/"target"
// attributes. The result is printed as "flow value: <v>" on stdout; logs and
// optional metrics go to stderr.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

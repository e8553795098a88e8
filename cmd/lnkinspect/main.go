// Command lnkinspect decodes Windows Shell Link (".lnk") files and prints
// their contents in a human- or machine-readable form.
package main

func main() {
	execute()
}

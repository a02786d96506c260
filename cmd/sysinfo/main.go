// Command sysinfo browses live host information: kernel identification from
// uname, the process environment, and mounted filesystems. Selected entries
// are printed on exit, so it doubles as a quick "collect these facts" tool.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"navtui"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "sysinfo: stdin is not a terminal")
		os.Exit(1)
	}

	nav := navtui.NewBuilder().
		SectionTitle("System Information").
		ItemTitlePrefix("").
		Modern().
		ItemsPerPage(12).
		AddSection(kernelSection()).
		AddSection(environSection()).
		AddSection(mountSection()).
		OnExit(printSelections).
		Build()

	if err := nav.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "sysinfo:", err)
		os.Exit(1)
	}
}

func kernelSection() navtui.Section {
	sec := navtui.NewSectionDesc("Kernel", "uname(2) identification")

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		sec.AddItemName(fmt.Sprintf("uname failed: %v", err))
		return sec
	}
	sec.AddItem(navtui.NewItemDesc("Sysname", utsString(uts.Sysname[:])))
	sec.AddItem(navtui.NewItemDesc("Nodename", utsString(uts.Nodename[:])))
	sec.AddItem(navtui.NewItemDesc("Release", utsString(uts.Release[:])))
	sec.AddItem(navtui.NewItemDesc("Version", utsString(uts.Version[:])))
	sec.AddItem(navtui.NewItemDesc("Machine", utsString(uts.Machine[:])))
	return sec
}

func utsString(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

func environSection() navtui.Section {
	sec := navtui.NewSectionDesc("Environment", "process environment variables")
	env := os.Environ()
	sort.Strings(env)
	for _, kv := range env {
		name, value, _ := strings.Cut(kv, "=")
		sec.AddItem(navtui.NewItemDesc(name, value))
	}
	return sec
}

func mountSection() navtui.Section {
	sec := navtui.NewSectionDesc("Mounts", "mounted filesystems")

	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		sec.AddItemName(fmt.Sprintf("unavailable: %v", err))
		return sec
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		sec.AddItem(navtui.NewItemDesc(fields[1], fields[0]+" ("+fields[2]+")"))
	}
	return sec
}

func printSelections(sections []navtui.Section) {
	for i := range sections {
		names := sections[i].SelectedNames()
		if len(names) == 0 {
			continue
		}
		fmt.Printf("%s:\n", sections[i].Name)
		for _, name := range names {
			if item := sections[i].ItemByName(name); item != nil && item.Description != "" {
				fmt.Printf("  %s = %s\n", name, item.Description)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
	}
}

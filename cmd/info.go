package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"
)

// HostInfo prints the CPU and memory resources available for rendering
func HostInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resource", "Value"})

	table.Append([]string{"Logical CPUs", fmt.Sprintf("%d", runtime.NumCPU())})

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		table.Append([]string{"CPU model", cpuInfo[0].ModelName})
		table.Append([]string{"CPU clock", fmt.Sprintf("%.0f MHz", cpuInfo[0].Mhz)})
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		table.Append([]string{"Total memory", fmt.Sprintf("%.1f GiB", float64(memInfo.Total)/(1<<30))})
		table.Append([]string{"Available memory", fmt.Sprintf("%.1f GiB", float64(memInfo.Available)/(1<<30))})
	}

	table.Render()
	logger.Noticef("host resources\n%s", buf.String())

	return nil
}

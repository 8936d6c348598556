// Package report renders page sets and engine results for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"evict"
)

var pageHeader = []string{"Page Number", "Time Loaded", "Last Reference", "M", "R", "Class"}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	return table
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WritePages renders one row per page in insertion order.
func WritePages(w io.Writer, ps *evict.PageSet) {
	table := newTable(w, pageHeader)
	for _, p := range ps.Pages() {
		table.Append([]string{
			strconv.Itoa(p.ID()),
			strconv.Itoa(p.LoadTime()),
			strconv.Itoa(p.LastReference()),
			bit(p.Modified()),
			bit(p.Referenced()),
			strconv.Itoa(int(p.Class())),
		})
	}
	table.Render()
}

// WriteResults renders one row per policy.
func WriteResults(w io.Writer, rep evict.Report) {
	table := newTable(w, []string{"Policy", "Page", "Detail"})
	for _, res := range rep.Results() {
		table.Append([]string{res.Policy.Title(), strconv.Itoa(res.Page.ID()), Detail(res)})
	}
	table.Render()
}

// Detail explains how a result was reached.
func Detail(res evict.Result) string {
	switch res.Policy {
	case evict.NRU:
		return "lowest " + res.Class.String()
	case evict.FIFO:
		return "loaded at " + strconv.Itoa(res.Page.LoadTime())
	case evict.LRU:
		return "last referenced at " + strconv.Itoa(res.Page.LastReference())
	case evict.SecondChance:
		if res.Fallback {
			return "all referenced, queue wrapped"
		}
		return "first unreferenced in load order"
	}
	return ""
}

// WriteSummary prints the lettered one-line answers.
func WriteSummary(w io.Writer, rep evict.Report) error {
	for i, res := range rep.Results() {
		_, err := fmt.Fprintf(w, "%c. Page %d is replaced when using the %s algorithm. (%s)\n",
			'a'+i, res.Page.ID(), res.Policy.Title(), Detail(res))
		if err != nil {
			return err
		}
	}
	return nil
}

// Rejection turns an engine or dataset error into the message shown to the
// user.
func Rejection(err error) string {
	switch {
	case errors.Is(err, evict.ErrEmptyInput):
		return fmt.Sprintf("dataset rejected: no pages to evict (%v)", err)
	case errors.Is(err, evict.ErrConstruction):
		return fmt.Sprintf("dataset rejected: invalid page data (%v)", err)
	}
	return fmt.Sprintf("dataset rejected: %v", err)
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-hr-manager/internal/domain"
)

const emptyList = "(none)"

func RenderCandidates(w io.Writer, view *domain.View[domain.Candidate]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPHONE\tEMAIL\tPOSITIONS\tTAGS\tREMARK")
	for i, c := range view.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, c.Name, c.Phone, c.Email,
			joinOrDash(c.Positions), joinOrDash(c.Tags), orDash(c.Remark))
	}
	if view.Len() == 0 {
		fmt.Fprintln(tw, emptyList)
	}
	return tw.Flush()
}

func RenderPositions(w io.Writer, view *domain.View[domain.Position]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSTATUS")
	for i, p := range view.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, p.Title, p.Status)
	}
	if view.Len() == 0 {
		fmt.Fprintln(tw, emptyList)
	}
	return tw.Flush()
}

func RenderInterviews(w io.Writer, view *domain.View[domain.Interview]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPOSITION\tCANDIDATES\tDATE\tTIME\tDURATION\tSTATUS")
	for i, iv := range view.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d min\t%s\n", i+1, iv.PositionTitle(),
			strings.Join(iv.CandidateNames(), ", "), iv.FormattedDate(), iv.FormattedStartTime(),
			iv.DurationMinutes(), iv.Status())
	}
	if view.Len() == 0 {
		fmt.Fprintln(tw, emptyList)
	}
	return tw.Flush()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

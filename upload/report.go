package upload

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type ObjectSummary struct {
	Object     string
	Created    int
	Updated    int
	Rejected   int
	Skipped    bool
	SkipReason string
}

// Report tallies outcomes per object in the order objects were processed.
type Report struct {
	order     []string
	summaries map[string]*ObjectSummary
}

func NewReport() *Report {
	return &Report{summaries: make(map[string]*ObjectSummary)}
}

func (r *Report) summary(object string) *ObjectSummary {
	s, ok := r.summaries[object]
	if !ok {
		s = &ObjectSummary{Object: object}
		r.summaries[object] = s
		r.order = append(r.order, object)
	}
	return s
}

func (r *Report) Record(object string, outcome SubmissionOutcome) {
	s := r.summary(object)
	switch {
	case !outcome.IsSuccess():
		s.Rejected++
	case outcome.Action == ActionUpdated:
		s.Updated++
	default:
		s.Created++
	}
}

func (r *Report) Reject(object string) {
	r.summary(object).Rejected++
}

func (r *Report) Skip(object, reason string) {
	s := r.summary(object)
	s.Skipped = true
	s.SkipReason = reason
}

func (r *Report) Summaries() []ObjectSummary {
	out := make([]ObjectSummary, 0, len(r.order))
	for _, object := range r.order {
		out = append(out, *r.summaries[object])
	}
	return out
}

func (r *Report) Render() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Object", "Created", "Updated", "Rejected", "Note"})

	var created, updated, rejected int
	for _, s := range r.Summaries() {
		tw.AppendRow(table.Row{s.Object, strconv.Itoa(s.Created), strconv.Itoa(s.Updated), strconv.Itoa(s.Rejected), s.SkipReason})
		created += s.Created
		updated += s.Updated
		rejected += s.Rejected
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(created), strconv.Itoa(updated), strconv.Itoa(rejected), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

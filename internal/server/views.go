package server

import (
	"fmt"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/analysis"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/feedback"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/session"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/pkg/types"
)

const (
	tabHome     = "home"
	tabEDA      = "eda"
	tabPredict  = "predict"
	tabFeedback = "feedback"
)

// pageView is the full template model for one render cycle.
type pageView struct {
	Tab       string
	HasData   bool
	UploadErr string
	EDA       *edaView
	Predict   *predictView
	Feedback  feedbackView
}

type tableView struct {
	Columns []string
	Rows    [][]string
}

type chartBar struct {
	Label   string
	Display string
	Width   int
}

// chartView renders either a bar series or, when the dataset lacks the
// needed columns, a warning in its place.
type chartView struct {
	Title   string
	Warning string
	Bars    []chartBar
}

type edaView struct {
	Channels     []string
	Selected     string
	Preview      tableView
	Charts       []chartView
	TotalRecords int
	HasCSAT      bool
	AvgCSAT      string
	PctSatisfied string
}

type liveFormView struct {
	Channels []string
	Tenures  []string
	Shifts   []string

	Channel     string
	Category    string
	SubCategory string
	AgentName   string
	Supervisor  string
	Manager     string
	Tenure      string
	Shift       string
}

func (f *liveFormView) fill(rec types.FeatureRecord) {
	f.Channel = rec.ChannelName
	f.Category = rec.Category
	f.SubCategory = rec.SubCategory
	f.AgentName = rec.AgentName
	f.Supervisor = rec.Supervisor
	f.Manager = rec.Manager
	f.Tenure = rec.TenureBucket
	f.Shift = rec.AgentShift
}

type predictView struct {
	Preview tableView

	// Form is nil when the dataset lacks the columns the constrained
	// selects are derived from; FormErr then says which.
	Form    *liveFormView
	FormErr string

	LiveResult string
	LiveErr    string

	BatchPreview *tableView
	BatchErr     string
	CanDownload  bool
}

type feedbackView struct {
	Name        string
	Email       string
	Rating      int
	Ratings     []int
	Suggestions string
	Warning     string
	Submitted   *feedback.Entry
}

func validTab(tab string) string {
	switch tab {
	case tabEDA, tabPredict, tabFeedback:
		return tab
	default:
		return tabHome
	}
}

// buildPage recomputes the whole page model from session state. Every
// user action renders top to bottom from here; handlers only decorate the
// result with their own outcome before executing the template.
func (s *Server) buildPage(sess *session.Session, tab, channel string) *pageView {
	page := &pageView{
		Tab:     validTab(tab),
		HasData: sess.HasDataset(),
		Feedback: feedbackView{
			Rating:  feedback.DefaultRating,
			Ratings: []int{1, 2, 3, 4, 5},
		},
	}
	if !page.HasData {
		return page
	}

	page.EDA = s.buildEDA(sess, channel)
	page.Predict = s.buildPredict(sess)
	return page
}

func (s *Server) buildEDA(sess *session.Session, channel string) *edaView {
	ds := sess.Dataset
	view := &edaView{
		Channels: analysis.ChannelOptions(ds),
		Selected: channel,
		Preview:  toTable(ds.Head(previewRows)),
	}
	if view.Selected == "" {
		view.Selected = analysis.AllChannels
	}

	filtered := analysis.FilterByChannel(ds, view.Selected)

	// Chart (a) is skipped silently; (b) and (c) warn about what is
	// missing, as the original view does.
	if res := analysis.CSATDistribution(filtered); !res.Skipped() {
		view.Charts = append(view.Charts, toChart(res.Chart, "%.0f"))
	}
	view.Charts = append(view.Charts, chartOrWarning(analysis.ResolutionVsCSAT(filtered), "Avg Resolution Time vs CSAT", "%.2f"))
	view.Charts = append(view.Charts, chartOrWarning(analysis.CSATByChannel(filtered), "CSAT by Support Channel", "%.2f"))

	sum := analysis.Summarize(filtered)
	view.TotalRecords = sum.TotalRecords
	view.HasCSAT = sum.HasCSAT
	if sum.HasCSAT {
		view.AvgCSAT = fmt.Sprintf("%.2f", sum.AvgCSAT)
		view.PctSatisfied = fmt.Sprintf("%.1f", sum.PctSatisfied)
	}
	return view
}

func (s *Server) buildPredict(sess *session.Session) *predictView {
	ds := sess.Dataset
	view := &predictView{
		Preview:     toTable(ds.Head(previewRows)),
		CanDownload: ds.HasColumn(types.ColPredictedCSAT),
	}

	// The constrained selects are bounded by the uploaded data; without
	// these columns the live form cannot render at all.
	var missing []string
	for _, col := range []string{types.ColChannelName, types.ColTenureBucket, types.ColAgentShift} {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		view.FormErr = "live prediction needs columns: " + quoteColumns(missing)
	} else {
		view.Form = &liveFormView{
			Channels: ds.Distinct(types.ColChannelName),
			Tenures:  ds.Distinct(types.ColTenureBucket),
			Shifts:   ds.Distinct(types.ColAgentShift),
		}
	}

	if view.CanDownload {
		head, err := ds.Project([]string{types.ColPredictedCSAT, types.ColPredictedLabel})
		if err == nil {
			t := toTable(head.Head(previewRows))
			view.BatchPreview = &t
		}
	}
	return view
}

func toTable(ds *dataset.Dataset) tableView {
	return tableView{Columns: ds.Columns, Rows: ds.Rows}
}

// toChart scales bars against the series maximum; valueFormat controls the
// printed value ("%.0f" for counts, "%.2f" for means).
func toChart(c *analysis.Chart, valueFormat string) chartView {
	view := chartView{Title: c.Title}
	max := 0.0
	for _, p := range c.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	for _, p := range c.Points {
		width := 0
		if max > 0 {
			width = int(p.Value / max * 100)
		}
		if width < 2 && p.Value > 0 {
			width = 2
		}
		view.Bars = append(view.Bars, chartBar{
			Label:   p.Label,
			Display: fmt.Sprintf(valueFormat, p.Value),
			Width:   width,
		})
	}
	return view
}

func chartOrWarning(res analysis.ChartResult, title, valueFormat string) chartView {
	if res.Skipped() {
		warning := "Missing column: " + quoteColumns(res.MissingColumns)
		if len(res.MissingColumns) > 1 {
			warning = "Missing columns: " + quoteColumns(res.MissingColumns)
		}
		return chartView{Title: title, Warning: warning}
	}
	return toChart(res.Chart, valueFormat)
}

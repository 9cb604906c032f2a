package server

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/config"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/feedback"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/predict"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/session"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/pkg/types"
)

var (
	//go:embed ui.html
	uiHTML string

	uiTemplate = template.Must(template.New("ui").Parse(uiHTML))
)

const (
	sessionCookie = "deepcsat_session"
	downloadName  = "csat_predictions.csv"
	previewRows   = 5
)

// Server wraps the dashboard UI handlers.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	sessions *session.Manager
	orch     *predict.Orchestrator
	recorder *feedback.Recorder
	mux      *http.ServeMux
}

// New constructs a Server with routes registered.
func New(cfg *config.Config, logger *zap.Logger, sessions *session.Manager, orch *predict.Orchestrator, recorder *feedback.Recorder) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}
	if sessions == nil {
		return nil, errors.New("session manager is nil")
	}
	if orch == nil {
		return nil, errors.New("orchestrator is nil")
	}
	if recorder == nil {
		return nil, errors.New("recorder is nil")
	}

	srv := &Server{
		cfg:      cfg,
		log:      logger,
		sessions: sessions,
		orch:     orch,
		recorder: recorder,
		mux:      http.NewServeMux(),
	}
	srv.registerRoutes()
	return srv, nil
}

// Handler returns the http handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/predict/live", s.handleLivePredict)
	s.mux.HandleFunc("/predict/batch", s.handleBatchPredict)
	s.mux.HandleFunc("/download", s.handleDownload)
	s.mux.HandleFunc("/feedback", s.handleFeedback)
}

// session resolves the browsing session from the cookie, minting a new one
// (and setting the cookie) when absent or expired. The cookie carries no
// Max-Age, so it dies with the browsing session.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess := s.sessions.GetOrCreate(id)
	if sess.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	page := s.buildPage(sess, r.URL.Query().Get("tab"), r.URL.Query().Get("channel"))
	s.render(w, page)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)

	file, _, err := r.FormFile("file")
	if err != nil {
		page := s.buildPage(sess, tabEDA, "")
		page.UploadErr = "error reading file: " + err.Error()
		s.render(w, page)
		return
	}
	defer file.Close()

	ds, err := dataset.ParseCSV(file)
	if err != nil {
		// Session state stays exactly as it was.
		s.log.Warn("upload rejected", zap.String("session", sess.ID), zap.Error(err))
		page := s.buildPage(sess, tabEDA, "")
		page.UploadErr = "error reading file: " + err.Error()
		s.render(w, page)
		return
	}

	sess.SetDataset(ds)
	s.log.Info("dataset uploaded",
		zap.String("session", sess.ID),
		zap.Int("rows", ds.NumRows()),
		zap.Int("columns", len(ds.Columns)))
	s.render(w, s.buildPage(sess, tabEDA, ""))
}

func (s *Server) handleLivePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	page := s.buildPage(sess, tabPredict, "")
	if !sess.HasDataset() || page.Predict.Form == nil {
		s.render(w, page)
		return
	}

	rec := types.FeatureRecord{
		ChannelName:  r.FormValue("channel"),
		Category:     r.FormValue("category"),
		SubCategory:  r.FormValue("sub_category"),
		AgentName:    r.FormValue("agent_name"),
		Supervisor:   r.FormValue("supervisor"),
		Manager:      r.FormValue("manager"),
		TenureBucket: r.FormValue("tenure_bucket"),
		AgentShift:   r.FormValue("agent_shift"),
	}
	page.Predict.Form.fill(rec)

	res := s.orch.Live(rec)
	if res.Err != nil {
		s.log.Warn("live prediction failed", zap.String("session", sess.ID), zap.Error(res.Err))
		page.Predict.LiveErr = res.Err.Error()
	} else {
		page.Predict.LiveResult = res.Predictions[0].Label
		s.log.Info("live prediction", zap.String("session", sess.ID), zap.String("label", res.Predictions[0].Label))
	}
	s.render(w, page)
}

func (s *Server) handleBatchPredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	if !sess.HasDataset() {
		s.render(w, s.buildPage(sess, tabPredict, ""))
		return
	}

	res := s.orch.Batch(sess.Dataset)
	page := s.buildPage(sess, tabPredict, "")
	if res.Err != nil {
		s.log.Warn("batch prediction failed", zap.String("session", sess.ID), zap.Error(res.Err))
		page.Predict.BatchErr = res.Err.Error()
	} else {
		s.log.Info("batch prediction", zap.String("session", sess.ID), zap.Int("rows", len(res.Predictions)))
	}
	s.render(w, page)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	if !sess.HasDataset() || !sess.Dataset.HasColumn(types.ColPredictedCSAT) {
		http.Error(w, "no predictions available - run batch prediction first", http.StatusNotFound)
		return
	}

	// Regenerated from the session dataset on every invocation.
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	if err := sess.Dataset.WriteCSV(w); err != nil {
		s.log.Error("csv download failed", zap.String("session", sess.ID), zap.Error(err))
	}
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)

	rating := feedback.DefaultRating
	if v, err := strconv.Atoi(r.FormValue("rating")); err == nil {
		rating = feedback.ClampRating(v)
	}
	entry := feedback.Entry{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Rating:      rating,
		Suggestions: r.FormValue("suggestions"),
	}

	page := s.buildPage(sess, tabFeedback, "")
	page.Feedback.Name = entry.Name
	page.Feedback.Email = entry.Email
	page.Feedback.Rating = entry.Rating
	page.Feedback.Suggestions = entry.Suggestions

	if err := s.recorder.Append(entry); err != nil {
		if errors.Is(err, feedback.ErrIncomplete) {
			page.Feedback.Warning = err.Error()
		} else {
			s.log.Error("feedback write failed", zap.Error(err))
			page.Feedback.Warning = "could not save feedback: " + err.Error()
		}
		s.render(w, page)
		return
	}

	s.log.Info("feedback recorded", zap.Int("rating", entry.Rating))
	page.Feedback.Submitted = &entry
	s.render(w, page)
}

func (s *Server) render(w http.ResponseWriter, page *pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := uiTemplate.Execute(w, page); err != nil {
		s.log.Error("render failed", zap.Error(err))
	}
}

func quoteColumns(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

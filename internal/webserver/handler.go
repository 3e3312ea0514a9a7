package webserver

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"quietspot/internal/password"
	"quietspot/internal/quiz"
	"quietspot/internal/store"
	"quietspot/internal/venue"
)

type handler struct {
	cfg      Config
	sessions *sessionRegistry
	limiter  *WindowLimiter
}

// NewHandler builds the HTTP handler for the quietspot site.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.DB == nil {
		return nil, errors.New("webserver: db is required")
	}
	h := &handler{
		cfg:      cfg,
		sessions: newSessionRegistry(cfg.Questions),
		limiter:  NewWindowLimiter(cfg.LimiterRequests, cfg.LimiterWindow),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /search-venues", h.handleSearchVenues)
	mux.HandleFunc("GET /filter-venues", h.handleFilterVenues)
	mux.HandleFunc("GET /venue/{id}", h.handleVenue)
	mux.HandleFunc("GET /signup", h.handleSignup)
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("GET /welcome", h.handleWelcome)
	mux.HandleFunc("POST /reviews", h.handleAddReview)
	mux.HandleFunc("GET /quiz", h.handleQuiz)
	mux.HandleFunc("POST /quiz/answer", h.handleQuizAnswer)
	mux.HandleFunc("POST /quiz/reset", h.handleQuizReset)
	return mux, nil
}

func (h *handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("render %s: %v", name, err), http.StatusInternalServerError)
	}
}

type venueListData struct {
	Query  string
	Venues []venue.Venue
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	venues, err := store.ListVenues(r.Context(), h.cfg.DB)
	if err != nil {
		http.Error(w, fmt.Sprintf("load venues: %v", err), http.StatusInternalServerError)
		return
	}
	h.render(w, "index", venueListData{Venues: venues})
}

func (h *handler) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	venues, err := store.ListVenues(r.Context(), h.cfg.DB)
	if err != nil {
		http.Error(w, fmt.Sprintf("search venues: %v", err), http.StatusInternalServerError)
		return
	}
	h.render(w, "results", venueListData{Query: query, Venues: venue.FilterRows(venues, query)})
}

func (h *handler) handleFilterVenues(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	filters := venue.Filters{
		Playground:      values.Get("playground"),
		Fenced:          values.Get("fenced"),
		QuietZones:      values.Get("quiet_zones"),
		Colors:          values["colors"],
		Smells:          values["smells"],
		FoodOwn:         values.Get("food_own"),
		DefinedDuration: values.Get("defined_duration"),
		Quiet:           values["quiet"],
		Crowdedness:     values["crowdedness"],
		FoodVariety:     values["food_variety"],
		PhotoURL:        values.Get("photo_url"),
	}
	venues, err := store.FilterVenues(r.Context(), h.cfg.DB, filters)
	if err != nil {
		http.Error(w, fmt.Sprintf("filter venues: %v", err), http.StatusInternalServerError)
		return
	}
	h.render(w, "results", venueListData{Venues: venues})
}

func (h *handler) handleVenue(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, err := store.VenueByID(r.Context(), h.cfg.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("load venue: %v", err), http.StatusInternalServerError)
		return
	}
	h.render(w, "venue", v)
}

type signupData struct {
	Password  string
	Checklist password.Checklist
}

// handleSignup renders the signup form with the strength checklist evaluated
// against the submitted preview value. Each strength check is one page round
// trip; the terminal signup form re-evaluates per keystroke instead.
func (h *handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("password")
	h.render(w, "signup", signupData{
		Password:  value,
		Checklist: password.Evaluate(value),
	})
}

func (h *handler) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(h.clientKey(r)) {
		http.Error(w, "too many attempts, try again shortly", http.StatusTooManyRequests)
		return
	}
	nickname := r.PostFormValue("nickname")
	pass := r.PostFormValue("password")
	if nickname == "" || pass == "" {
		http.Error(w, "nickname and password are required", http.StatusBadRequest)
		return
	}
	if _, err := store.RegisterUser(r.Context(), h.cfg.DB, nickname, pass); err != nil {
		if errors.Is(err, store.ErrNicknameTaken) {
			http.Error(w, "nickname already taken", http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("register: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login", nil)
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(h.clientKey(r)) {
		http.Error(w, "too many attempts, try again shortly", http.StatusTooManyRequests)
		return
	}
	nickname := r.PostFormValue("nickname")
	pass := r.PostFormValue("password")
	user, err := store.Authenticate(r.Context(), h.cfg.DB, nickname, pass)
	if errors.Is(err, store.ErrInvalidCredentials) {
		http.Error(w, "Invalid nickname or password", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("login: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/welcome?nickname="+url.QueryEscape(user.Nickname), http.StatusSeeOther)
}

type dashboardData struct {
	Nickname string
	Venues   []venue.Venue
	Reviews  []store.Review
}

func (h *handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		http.Error(w, "Nickname not found in the request", http.StatusBadRequest)
		return
	}
	reviews, err := store.ListReviews(r.Context(), h.cfg.DB)
	if err != nil {
		http.Error(w, fmt.Sprintf("load reviews: %v", err), http.StatusInternalServerError)
		return
	}
	venues, err := store.ListVenues(r.Context(), h.cfg.DB)
	if err != nil {
		http.Error(w, fmt.Sprintf("load venues: %v", err), http.StatusInternalServerError)
		return
	}
	h.render(w, "dashboard", dashboardData{Nickname: nickname, Venues: venues, Reviews: reviews})
}

func (h *handler) handleAddReview(w http.ResponseWriter, r *http.Request) {
	nickname := r.PostFormValue("nickname")
	venueID := r.PostFormValue("venue_id")
	text := r.PostFormValue("review_text")
	if nickname == "" || venueID == "" || text == "" {
		http.Error(w, "nickname, venue, and review text are required", http.StatusBadRequest)
		return
	}
	user, err := store.UserByNickname(r.Context(), h.cfg.DB, nickname)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "unknown nickname", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("lookup user: %v", err), http.StatusInternalServerError)
		return
	}
	if _, err := store.AddReview(r.Context(), h.cfg.DB, user.ID, venueID, text); err != nil {
		http.Error(w, fmt.Sprintf("add review: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/welcome?nickname="+url.QueryEscape(nickname), http.StatusSeeOther)
}

type questionData struct {
	Number  int
	Total   int
	Prompt  string
	Options []string
}

type summaryData struct {
	Summary string
}

func (h *handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.session(w, r)
	index, question, ok := session.Current()
	if !ok {
		score, total := session.Score()
		h.render(w, "summary", summaryData{Summary: quiz.SummaryText(score, total)})
		return
	}
	options := make([]string, 0, len(question.Answers))
	for _, answer := range question.Answers {
		options = append(options, answer.Text)
	}
	_, total := session.Score()
	h.render(w, "question", questionData{
		Number:  index + 1,
		Total:   total,
		Prompt:  question.Prompt,
		Options: options,
	})
}

// handleQuizAnswer scores one submitted answer. Submitting with no radio
// selected reloads the question unchanged; an empty submit never counts
// against the score.
func (h *handler) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.session(w, r)
	answer := r.PostFormValue("answer")
	if answer == "" {
		http.Redirect(w, r, "/quiz", http.StatusSeeOther)
		return
	}
	if _, err := session.Submit(answer); err != nil {
		if errors.Is(err, quiz.ErrUnknownAnswer) {
			http.Error(w, "answer does not match the current question", http.StatusBadRequest)
			return
		}
		if errors.Is(err, quiz.ErrFinished) {
			http.Redirect(w, r, "/quiz", http.StatusSeeOther)
			return
		}
		http.Error(w, fmt.Sprintf("submit answer: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

// handleQuizReset discards the caller's session entirely; the next request
// starts over with a fresh index and score.
func (h *handler) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	h.sessions.reset(w, r)
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

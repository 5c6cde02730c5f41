// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/olegiv/aisite/internal/chatbot"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/metrics"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// Success messages of the AJAX endpoints.
const (
	MsgFeedbackThanks    = "Thanks for your feedback!"
	MsgSubscribed        = "Successfully subscribed to our newsletter!"
	MsgAlreadySubscribed = "You are already subscribed to our newsletter."
	MsgRegistered        = "Successfully registered for the event!"
	MsgAlreadyRegistered = "You are already registered for this event."
	MsgContactThanks     = "Thank you for your message! We will get back to you soon."
	MsgPDFNotFound       = "PDF file not found"
)

const (
	honeypotField         = "_website"
	attachmentField       = "attachment"
	defaultAttachmentSize = 10 << 20
)

// Intake is the visitor-facing write side used by the AJAX endpoints.
type Intake interface {
	SubmitContactInquiry(ctx context.Context, in model.ContactInquiryInput, attachment *media.Upload, clientIP string) (store.ContactInquiry, error)
	SubmitFeedback(ctx context.Context, in model.FeedbackInput) (store.Feedback, error)
	SubscribeNewsletter(ctx context.Context, in model.NewsletterInput) (service.SubscribeResult, error)
	RegisterForEvent(ctx context.Context, eventID int64, in model.RegistrationInput) (service.RegistrationResult, error)
	DownloadArticle(ctx context.Context, id int64) (service.ArticleFile, error)
	OpenArticle(ctx context.Context, id int64) (service.ArticleFile, error)
}

// Responder answers chatbot messages.
type Responder interface {
	Respond(message string) string
}

// AjaxHandler serves the public form endpoints. Every answer is a
// {success,message} JSON envelope with status 200; unexpected failures are
// logged and reported with a generic message.
type AjaxHandler struct {
	intake        Intake
	bot           Responder
	logger        *slog.Logger
	trustProxy    bool
	maxAttachment int64
}

// NewAjaxHandler creates a new AjaxHandler. maxAttachment bounds contact
// form attachments; zero selects 10 MB.
func NewAjaxHandler(intake Intake, bot Responder, logger *slog.Logger, trustProxy bool, maxAttachment int64) *AjaxHandler {
	if maxAttachment <= 0 {
		maxAttachment = defaultAttachmentSize
	}
	return &AjaxHandler{
		intake:        intake,
		bot:           bot,
		logger:        logger,
		trustProxy:    trustProxy,
		maxAttachment: maxAttachment,
	}
}

type feedbackRequest struct {
	model.FeedbackInput
	Honeypot string `json:"_website"`
}

type newsletterRequest struct {
	model.NewsletterInput
	Honeypot string `json:"_website"`
}

type registrationRequest struct {
	model.RegistrationInput
	Honeypot string `json:"_website"`
}

type contactRequest struct {
	model.ContactInquiryInput
	Honeypot string `json:"_website"`
}

// ChatbotRequest is the body of a chatbot message.
type ChatbotRequest struct {
	Message string `json:"message"`
}

// ChatbotResponse is the chatbot answer envelope.
type ChatbotResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Feedback handles POST /api/feedback/.
func (h *AjaxHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if IsJSON(r) {
		if err := DecodeJSON(w, r, &req); err != nil {
			h.badBody(w, r, metrics.FormFeedback, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.badBody(w, r, metrics.FormFeedback, err)
			return
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Company = r.PostFormValue("company")
		req.Rating = formInt(r.PostFormValue("rating"))
		req.Comment = r.PostFormValue("comment")
		req.Honeypot = r.PostFormValue(honeypotField)
	}

	if h.isSpam(r, metrics.FormFeedback, req.Honeypot) {
		writeJSONSuccess(w, MsgFeedbackThanks)
		return
	}

	fb, err := h.intake.SubmitFeedback(r.Context(), req.FeedbackInput)
	if err != nil {
		h.fail(w, r, metrics.FormFeedback, MsgInvalidInput, err)
		return
	}

	metrics.RecordIntake(metrics.FormFeedback, metrics.ResultCreated)
	h.logger.InfoContext(r.Context(), "feedback received", "id", fb.ID, "rating", fb.Rating)
	writeJSONSuccess(w, MsgFeedbackThanks)
}

// Newsletter handles POST /api/newsletter/. Subscribing an address twice
// succeeds without changing the stored subscriber.
func (h *AjaxHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if IsJSON(r) {
		if err := DecodeJSON(w, r, &req); err != nil {
			h.badBody(w, r, metrics.FormNewsletter, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.badBody(w, r, metrics.FormNewsletter, err)
			return
		}
		req.Email = r.PostFormValue("email")
		req.Name = r.PostFormValue("name")
		req.Honeypot = r.PostFormValue(honeypotField)
	}

	if h.isSpam(r, metrics.FormNewsletter, req.Honeypot) {
		writeJSONSuccess(w, MsgSubscribed)
		return
	}

	res, err := h.intake.SubscribeNewsletter(r.Context(), req.NewsletterInput)
	if err != nil {
		h.fail(w, r, metrics.FormNewsletter, MsgInvalidEmail, err)
		return
	}

	if !res.Created {
		metrics.RecordIntake(metrics.FormNewsletter, metrics.ResultDuplicate)
		writeJSONSuccess(w, MsgAlreadySubscribed)
		return
	}
	metrics.RecordIntake(metrics.FormNewsletter, metrics.ResultCreated)
	h.logger.InfoContext(r.Context(), "newsletter subscription", "id", res.Subscriber.ID)
	writeJSONSuccess(w, MsgSubscribed)
}

// Chatbot handles POST /api/chatbot/.
func (h *AjaxHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req ChatbotRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid chatbot request", "error", err)
		writeJSON(w, http.StatusOK, ChatbotResponse{Success: false, Response: MsgChatbotError})
		return
	}

	reply := h.bot.Respond(req.Message)
	metrics.RecordChatbotMessage(reply != chatbot.Fallback)
	writeJSON(w, http.StatusOK, ChatbotResponse{Success: true, Response: reply})
}

// DownloadArticle handles GET /api/download-article/{id}/ and streams the
// article PDF as an attachment. HEAD requests are not counted.
func (h *AjaxHandler) DownloadArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, MsgPDFNotFound)
		return
	}

	open := h.intake.DownloadArticle
	if r.Method == http.MethodHead {
		open = h.intake.OpenArticle
	}
	af, err := open(r.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			writeJSONError(w, http.StatusNotFound, MsgPDFNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "article download failed", "article_id", id, "error", err)
		writeJSONFailure(w, MsgGenericError)
		return
	}
	defer func() { _ = af.File.Close() }()

	info, err := af.File.Stat()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "stat article PDF", "path", af.Path, "error", err)
		writeJSONFailure(w, MsgGenericError)
		return
	}

	if r.Method != http.MethodHead {
		metrics.RecordArticleDownload()
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(af.Title+".pdf"))
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, info.Name(), info.ModTime(), af.File)
}

// RegisterEvent handles POST /api/register-event/{id}/.
func (h *AjaxHandler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := ParseIDParam(r)
	if err != nil {
		writeJSONFailure(w, MsgEventNotFound)
		return
	}

	var req registrationRequest
	if IsJSON(r) {
		if err := DecodeJSON(w, r, &req); err != nil {
			h.badBody(w, r, metrics.FormRegistration, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.badBody(w, r, metrics.FormRegistration, err)
			return
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Phone = r.PostFormValue("phone")
		req.Company = r.PostFormValue("company")
		req.JobTitle = r.PostFormValue("job_title")
		req.SpecialRequirements = r.PostFormValue("special_requirements")
		req.Honeypot = r.PostFormValue(honeypotField)
	}

	if h.isSpam(r, metrics.FormRegistration, req.Honeypot) {
		writeJSONSuccess(w, MsgRegistered)
		return
	}

	res, err := h.intake.RegisterForEvent(r.Context(), eventID, req.RegistrationInput)
	if err != nil {
		if service.IsNotFound(err) {
			metrics.RecordIntake(metrics.FormRegistration, metrics.ResultInvalid)
			writeJSONFailure(w, MsgEventNotFound)
			return
		}
		h.fail(w, r, metrics.FormRegistration, MsgInvalidInput, err)
		return
	}

	if !res.Created {
		metrics.RecordIntake(metrics.FormRegistration, metrics.ResultDuplicate)
		writeJSONFailure(w, MsgAlreadyRegistered)
		return
	}
	metrics.RecordIntake(metrics.FormRegistration, metrics.ResultCreated)
	h.logger.InfoContext(r.Context(), "event registration", "event_id", eventID, "id", res.Registration.ID)
	writeJSONSuccess(w, MsgRegistered)
}

// Contact handles POST /api/contact/. The body is multipart when an
// attachment is sent; urlencoded and JSON bodies are accepted too.
func (h *AjaxHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var (
		req        contactRequest
		attachment *media.Upload
	)

	if IsJSON(r) {
		if err := DecodeJSON(w, r, &req); err != nil {
			h.badBody(w, r, metrics.FormContact, err)
			return
		}
	} else {
		if err := ParseMultipart(w, r, h.maxAttachment); err != nil {
			if IsBodyTooLarge(err) {
				metrics.RecordIntake(metrics.FormContact, metrics.ResultInvalid)
				writeJSONInvalid(w, MsgInvalidInput, map[string]string{
					attachmentField: fmt.Sprintf("File size must be under %dMB.", h.maxAttachment>>20),
				})
				return
			}
			h.badBody(w, r, metrics.FormContact, err)
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Phone = r.FormValue("phone")
		req.Company = r.FormValue("company")
		req.Country = r.FormValue("country")
		req.JobTitle = r.FormValue("job_title")
		req.Message = r.FormValue("message")
		req.Honeypot = r.FormValue(honeypotField)

		up, closer, err := FormUpload(r, attachmentField)
		if err != nil {
			h.badBody(w, r, metrics.FormContact, err)
			return
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}
		attachment = up
	}

	if h.isSpam(r, metrics.FormContact, req.Honeypot) {
		writeJSONSuccess(w, MsgContactThanks)
		return
	}

	ip := util.ClientIP(r, h.trustProxy)
	if _, err := h.intake.SubmitContactInquiry(r.Context(), req.ContactInquiryInput, attachment, ip); err != nil {
		h.fail(w, r, metrics.FormContact, MsgInvalidInput, err)
		return
	}

	metrics.RecordIntake(metrics.FormContact, metrics.ResultCreated)
	writeJSONSuccess(w, MsgContactThanks)
}

// isSpam reports whether the submission came from a bot or filled the
// honeypot. Such submissions are answered as if they succeeded.
func (h *AjaxHandler) isSpam(r *http.Request, form, honeypot string) bool {
	if strings.TrimSpace(honeypot) == "" && !middleware.IsBot(r) {
		return false
	}
	metrics.RecordIntake(form, metrics.ResultSpam)
	h.logger.InfoContext(r.Context(), "spam submission discarded",
		"form", form,
		"user_agent", r.UserAgent(),
		"honeypot", honeypot != "",
	)
	return true
}

// fail answers a rejected submission. Validation errors carry the field
// messages; anything else is logged and reported generically.
func (h *AjaxHandler) fail(w http.ResponseWriter, r *http.Request, form, invalidMsg string, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		metrics.RecordIntake(form, metrics.ResultInvalid)
		writeJSONInvalid(w, invalidMsg, ve.Fields)
		return
	}
	metrics.RecordIntake(form, metrics.ResultError)
	h.logger.ErrorContext(r.Context(), "intake submission failed", "form", form, "error", err)
	writeJSONFailure(w, MsgGenericError)
}

func (h *AjaxHandler) badBody(w http.ResponseWriter, r *http.Request, form string, err error) {
	metrics.RecordIntake(form, metrics.ResultInvalid)
	h.logger.WarnContext(r.Context(), "malformed intake body", "form", form, "error", err)
	writeJSONFailure(w, MsgGenericError)
}

// contentDisposition builds an attachment header for filename. Non-ASCII
// names also get an RFC 5987 filename* parameter.
func contentDisposition(filename string) string {
	var b strings.Builder
	ascii := true
	for _, r := range filename {
		switch {
		case r == '"' || r == '\\':
			b.WriteRune('_')
		case r > unicode.MaxASCII:
			ascii = false
			b.WriteRune('_')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}

	v := `attachment; filename="` + b.String() + `"`
	if !ascii {
		v += "; filename*=UTF-8''" + url.PathEscape(filename)
	}
	return v
}

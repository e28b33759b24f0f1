package web

import (
	"net/http"
	"strings"

	"github.com/nikolayk812/storefront-cart/internal/countdown"
	"github.com/nikolayk812/storefront-cart/internal/forms"
)

type accountMessages struct {
	badEmail     string
	weakPassword string
	ok           string
}

var (
	loginMessages = accountMessages{
		badEmail:     "Please enter a valid email address containing '@'",
		weakPassword: "Weak password. It must have at least 8 characters, including an uppercase, a lowercase and a number.",
		ok:           "Signed in successfully",
	}
	registerMessages = accountMessages{
		badEmail:     "email address must contain '@'",
		weakPassword: "Weak password.",
		ok:           "Account created successfully",
	}
)

type messageResponse struct {
	Message string `json:"message"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	a.handleAccountForm(w, r, loginMessages)
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	a.handleAccountForm(w, r, registerMessages)
}

func (a *API) handleAccountForm(w http.ResponseWriter, r *http.Request, msgs accountMessages) {
	fields, err := readFields(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !forms.IsValidEmail(strings.TrimSpace(fields["email"])) {
		respondError(w, http.StatusUnprocessableEntity, msgs.badEmail)
		return
	}
	if !forms.IsStrongPassword(fields["password"]) {
		respondError(w, http.StatusUnprocessableEntity, msgs.weakPassword)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgs.ok})
}

type countdownResponse struct {
	Remaining string `json:"remaining"`
	Ended     bool   `json:"ended"`
}

func (a *API) handleCountdown(w http.ResponseWriter, r *http.Request) {
	if a.sale == nil {
		writeJSON(w, http.StatusOK, countdownResponse{Remaining: countdown.Ended, Ended: true})
		return
	}

	text := a.sale.String()
	writeJSON(w, http.StatusOK, countdownResponse{
		Remaining: text,
		Ended:     text == countdown.Ended,
	})
}

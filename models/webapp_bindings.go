// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContactFormBindings names the DOM elements of the Mini App contact form.
// The bindings are declarations only; the page script wires the handlers.
type ContactFormBindings struct {
	Form    string `json:"form"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Submit  string `json:"submit"`
	Status  string `json:"status"`
}

// MobileNavBindings names the DOM elements of the collapsible mobile menu.
type MobileNavBindings struct {
	Toggle string `json:"toggle"`
	Menu   string `json:"menu"`
}

// WebAppBindings groups every element binding the Mini App page declares.
type WebAppBindings struct {
	ContactForm ContactFormBindings `json:"contactForm"`
	MobileNav   MobileNavBindings   `json:"mobileNav"`
}

// DefaultWebAppBindings returns the element ids used by the bundled page.
func DefaultWebAppBindings() WebAppBindings {
	return WebAppBindings{
		ContactForm: ContactFormBindings{
			Form:    "contactForm",
			Name:    "contactName",
			Email:   "contactEmail",
			Message: "contactMessage",
			Submit:  "contactSubmit",
			Status:  "formStatus",
		},
		MobileNav: MobileNavBindings{
			Toggle: "mobileMenuToggle",
			Menu:   "mobileMenu",
		},
	}
}

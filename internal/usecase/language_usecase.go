package usecase

import (
	"net/http"

	"freshcart/internal/domain/cart"
	"freshcart/internal/i18n"
	"freshcart/internal/session"
)

type LanguageUsecase struct{}

func NewLanguageUsecase() *LanguageUsecase {
	return &LanguageUsecase{}
}

type LanguageResponse struct {
	Language i18n.Language `json:"language"`
}

type TranslationsResponse struct {
	Language     i18n.Language     `json:"language"`
	Translations map[string]string `json:"translations"`
}

func (u *LanguageUsecase) Get(s *session.Session) LanguageResponse {
	var lang i18n.Language
	s.Do(func(_ *cart.Ledger, st *i18n.State) { lang = st.Current() })
	return LanguageResponse{Language: lang}
}

// en / ta 以外は400
func (u *LanguageUsecase) Set(s *session.Session, raw string) (LanguageResponse, error) {
	lang, err := i18n.ParseLanguage(raw)
	if err != nil {
		return LanguageResponse{}, NewHTTPError(http.StatusBadRequest, "unsupported language")
	}
	s.Do(func(_ *cart.Ledger, st *i18n.State) { st.Set(lang) })
	return LanguageResponse{Language: lang}, nil
}

func (u *LanguageUsecase) Toggle(s *session.Session) LanguageResponse {
	var lang i18n.Language
	s.Do(func(_ *cart.Ledger, st *i18n.State) { lang = st.Toggle() })
	return LanguageResponse{Language: lang}
}

// Translations は現在の言語の辞書をまるごと返す。?key=で1件だけ引ける
func (u *LanguageUsecase) Translations(s *session.Session, key string) TranslationsResponse {
	var res TranslationsResponse
	s.Do(func(_ *cart.Ledger, st *i18n.State) {
		res.Language = st.Current()
		if key != "" {
			res.Translations = map[string]string{key: st.Resolve(key)}
			return
		}
		res.Translations = st.Dictionary().All(res.Language)
	})
	return res
}

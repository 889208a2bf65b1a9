package i18n

// キー → 英語/タミル語
type Dictionary struct {
	entries map[string]Localized
}

// NewDictionary は渡されたエントリで辞書を作る（nilなら空）。
func NewDictionary(entries map[string]Localized) *Dictionary {
	m := make(map[string]Localized, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Dictionary{entries: m}
}

// DefaultDictionary はストアフロントの固定辞書。
func DefaultDictionary() *Dictionary {
	return NewDictionary(storefrontTranslations)
}

// Lookup はlang側の文字列を返す。
// キーが無い、または訳が空の場合はキーそのものを返す（空文字は返さない）。
func (d *Dictionary) Lookup(key string, lang Language) string {
	if d == nil {
		return key
	}
	e, ok := d.entries[key]
	if !ok {
		return key
	}
	if s := e.In(lang); s != "" {
		return s
	}
	return key
}

// All は指定言語で全キーを解決したマップ（/translations用）。
func (d *Dictionary) All(lang Language) map[string]string {
	if d == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(d.entries))
	for k := range d.entries {
		out[k] = d.Lookup(k, lang)
	}
	return out
}

// State はセッションごとの現在言語。
type State struct {
	dict *Dictionary
	lang Language
}

func NewState(dict *Dictionary) *State {
	return &State{dict: dict, lang: DefaultLanguage}
}

func (s *State) Current() Language {
	return s.lang
}

func (s *State) Dictionary() *Dictionary {
	return s.dict
}

// Set は言語を直接指定する。
func (s *State) Set(lang Language) {
	s.lang = lang
}

// Toggle は en ↔ ta を切り替える。
func (s *State) Toggle() Language {
	s.lang = s.lang.Other()
	return s.lang
}

// Resolve は現在言語でキーを引く。
func (s *State) Resolve(key string) string {
	return s.dict.Lookup(key, s.lang)
}

package problem

// GenericMessage is the last resort of DisplayMessage.
const GenericMessage = "An unexpected error occurred."

// Resolver maps an error code to a user facing message.
type Resolver func(code string) (string, bool)

type Pair struct {
	Code    string
	Message string
}

type displayConfig struct {
	resolver Resolver
	fallback string
}

type DisplayOption func(c *displayConfig)

func WithResolver(r Resolver) DisplayOption {
	return func(c *displayConfig) {
		c.resolver = r
	}
}

func WithMessages(messages map[string]string) DisplayOption {
	return WithResolver(func(code string) (string, bool) {
		msg, ok := messages[code]
		return msg, ok
	})
}

// WithPairs resolves through an ordered list; the first match wins.
func WithPairs(pairs ...Pair) DisplayOption {
	return WithResolver(func(code string) (string, bool) {
		for _, pair := range pairs {
			if pair.Code == code {
				return pair.Message, true
			}
		}
		return "", false
	})
}

func WithDefault(message string) DisplayOption {
	return func(c *displayConfig) {
		c.fallback = message
	}
}

// DisplayMessage picks the text shown to a user: the resolver's message for
// the error code, then Detail, then Title, then the supplied default, then
// GenericMessage.
func (p *Problem) DisplayMessage(opts ...DisplayOption) string {
	cfg := displayConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if p == nil {
		return orGeneric(cfg.fallback)
	}

	if code := p.ErrorCode(); code != "" && cfg.resolver != nil {
		if msg, ok := cfg.resolver(code); ok && msg != "" {
			return msg
		}
	}
	if p.Detail != "" {
		return p.Detail
	}
	if p.Title != "" {
		return p.Title
	}
	return orGeneric(cfg.fallback)
}

func orGeneric(fallback string) string {
	if fallback != "" {
		return fallback
	}
	return GenericMessage
}

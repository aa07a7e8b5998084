package publisher

import (
	"context"
	"strings"

	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
	"github.com/alcatrazescapee/epsilon-publish/internal/logger"
)

// warnOnCredentials reports credentials that will not authenticate.
// Resolution still succeeds; the external publisher rejects them.
func (p *publisher) warnOnCredentials(ctx context.Context, target publication.Target) {
	for _, c := range []struct {
		field string
		value *string
	}{
		{"username", target.Credentials.Username},
		{"password", target.Credentials.Password},
	} {
		switch {
		case c.value == nil:
			logger.WarnKV(ctx, "Credential is not set, publishing will be anonymous", "field", c.field)
		case publication.IsPlaceholder(*c.value):
			logger.WarnKV(ctx, "Credential is a placeholder, publishing will fail authentication",
				"field", c.field, "value", *c.value)
		}
	}

	if target.IsLocal() {
		logger.Info(ctx, "No registry URL set, artifacts go to the local Maven repository")
	}
}

// printSummary logs human-readable guidance about the resolved publication.
func (p *publisher) printSummary(ctx context.Context, desc *publication.Descriptor) {
	logger.Info(ctx, Summary(desc))
}

// Summary renders a redacted multi-line description of desc.
func Summary(desc *publication.Descriptor) string {
	var builder strings.Builder

	builder.WriteString("Publication ")
	builder.WriteString(desc.Identity.String())
	builder.WriteString(" via ")
	builder.WriteString(string(desc.Strategy))

	builder.WriteString("\n  url: ")
	if desc.Target.IsLocal() {
		builder.WriteString("(local repository)")
	} else {
		builder.WriteString(desc.Target.URL)
	}

	if desc.Target.RepositoryKey != "" {
		builder.WriteString("\n  repository: ")
		builder.WriteString(desc.Target.RepositoryKey)
	}

	builder.WriteString("\n  username: ")
	builder.WriteString(publication.RedactUsername(desc.Target.Credentials.Username))
	builder.WriteString("\n  password: ")
	builder.WriteString(publication.RedactPassword(desc.Target.Credentials.Password))

	for _, a := range desc.Artifacts {
		builder.WriteString("\n  ")
		builder.WriteString(a.Location)

		if a.Present {
			builder.WriteString(" (built)")
		}
	}

	return builder.String()
}

package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerated fields prior to default application.
// It mutates the provided config in-place. Unknown OS and checkout values are
// left untouched for ValidateConfig to report.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeLogging(&c.Logging, res)
	normalizeOutput(&c.Output, res)
	normalizeOS(&c.Defaults.OS, "defaults.os", res)
	normalizeCheckout(&c.Defaults.CheckoutMode, "defaults.checkout_mode", res)
	normalizeProject(&c.Project, "project", res)
	return res, nil
}

func normalizeProject(p *ProjectConfig, path string, res *NormalizationResult) {
	for i := range p.BuildTypes {
		bt := &p.BuildTypes[i]
		field := fmt.Sprintf("%s.build_types[%d]", path, i)
		normalizeOS(&bt.OS, field+".os", res)
		normalizeCheckout(&bt.CheckoutMode, field+".checkout_mode", res)
		bt.VCSRoots = normalizeRefList(field+".vcs_roots", bt.VCSRoots, res)
		for j := range bt.Requirements {
			r := &bt.Requirements[j]
			if t := strings.ToLower(strings.TrimSpace(r.Type)); t != r.Type {
				res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("%s.requirements[%d].type", field, j), r.Type, t))
				r.Type = t
			}
		}
	}
	for i := range p.SubProjects {
		normalizeProject(&p.SubProjects[i], fmt.Sprintf("%s.sub_projects[%d]", path, i), res)
	}
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if lvl := NormalizeLogLevel(string(l.Level)); lvl != "" {
		if l.Level != lvl {
			res.Warnings = append(res.Warnings, warnChanged("logging.level", l.Level, lvl))
			l.Level = lvl
		}
	} else if strings.TrimSpace(string(l.Level)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.level", string(l.Level), string(LogLevelInfo)))
		l.Level = LogLevelInfo
	}
	if f := NormalizeLogFormat(string(l.Format)); f != "" {
		if l.Format != f {
			res.Warnings = append(res.Warnings, warnChanged("logging.format", l.Format, f))
			l.Format = f
		}
	} else if strings.TrimSpace(string(l.Format)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.format", string(l.Format), string(LogFormatText)))
		l.Format = LogFormatText
	}
}

func normalizeOutput(o *OutputConfig, res *NormalizationResult) {
	if f := NormalizeOutputFormat(string(o.Format)); f != "" {
		if o.Format != f {
			res.Warnings = append(res.Warnings, warnChanged("output.format", o.Format, f))
			o.Format = f
		}
	} else if strings.TrimSpace(string(o.Format)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("output.format", string(o.Format), string(OutputFormatYAML)))
		o.Format = OutputFormatYAML
	}
}

func normalizeOS(v *string, field string, res *NormalizationResult) {
	if strings.TrimSpace(*v) == "" {
		return
	}
	o, err := platform.Parse(*v)
	if err != nil {
		return
	}
	if o.Name() != *v {
		res.Warnings = append(res.Warnings, warnChanged(field, *v, o.Name()))
		*v = o.Name()
	}
}

func normalizeCheckout(v *string, field string, res *NormalizationResult) {
	if strings.TrimSpace(*v) == "" {
		return
	}
	m, err := dsl.ParseCheckoutMode(*v)
	if err != nil {
		return
	}
	if string(m) != *v {
		res.Warnings = append(res.Warnings, warnChanged(field, *v, m))
		*v = string(m)
	}
}

func warnChanged(field string, from, to interface{}) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/cli"
	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

const (
	tableFormat  = "%-27.27s %-9.9s  %-40.40s\n"
	valueFormat  = "%-27.27s %-9.9s %-1.1s%-39.39s\n"
	tableRule    = "================================================================="
	optionFormat = "%-68.68s\n"
)

var tableWidths = []int{27, 9, 40}

// XMLConfig writes every writable configuration option as XML. Options
// without documentation get an empty description and a warning on errw.
func XMLConfig(w, errw io.Writer, p Processor) error {
	loc := p.Localizer()

	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\"?>\n<config version=\"%s\">\n", tidy.LibraryVersion())
	for _, opt := range p.Options() {
		if opt.ReadOnly() {
			continue
		}
		d := Describe(p, opt)

		fmt.Fprintf(&b, " <option class=\"%s\">\n", d.Category)
		fmt.Fprintf(&b, "  <name>%s</name>\n", d.Name)
		fmt.Fprintf(&b, "  <type>%s</type>\n", d.Type)
		if d.HasDefault {
			fmt.Fprintf(&b, "  <default>%s</default>\n", d.Default)
		} else {
			b.WriteString("  <default />\n")
		}
		if d.HaveValues {
			fmt.Fprintf(&b, "  <example>%s</example>\n", d.Allowed())
		} else {
			b.WriteString("  <example />\n")
		}
		if doc := p.OptionDoc(opt); doc != "" {
			fmt.Fprintf(&b, "  <description>%s</description>\n", doc)
		} else {
			b.WriteString("  <description />\n")
			fmt.Fprint(errw, loc.Sprintf(locale.OptionUndocumented, d.Name))
		}
		for _, link := range p.OptionLinks(opt) {
			fmt.Fprintf(&b, "  <seealso>%s</seealso>\n", link.Name())
		}
		b.WriteString(" </option>\n")
	}
	b.WriteString("</config>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// HelpConfig writes the table of writable options with their type and
// allowed values, sorted by name.
func HelpConfig(w io.Writer, p Processor) error {
	loc := p.Localizer()

	fmt.Fprint(w, loc.String(locale.HelpConfigIntro))
	fmt.Fprintf(w, tableFormat,
		loc.String(locale.HelpConfigName),
		loc.String(locale.HelpConfigType),
		loc.String(locale.HelpConfigAllowed))
	fmt.Fprintf(w, tableFormat, tableRule, tableRule, tableRule)

	for _, opt := range p.SortedOptions() {
		if opt.ReadOnly() {
			continue
		}
		d := Describe(p, opt)
		allowed := "-"
		if d.HaveValues {
			allowed = d.Allowed()
		}
		if err := cli.WriteColumns(w, tableFormat, tableWidths, d.Name, d.Type, allowed); err != nil {
			return err
		}
	}
	return nil
}

// ShowConfig writes the current value of every option, sorted by name.
// Read-only values are marked with an asterisk; each declared tag of a
// tag list gets its own row.
func ShowConfig(w io.Writer, p Processor) error {
	loc := p.Localizer()

	fmt.Fprint(w, loc.String(locale.ShowConfigIntro))
	fmt.Fprintf(w, tableFormat,
		loc.String(locale.HelpConfigName),
		loc.String(locale.HelpConfigType),
		loc.String(locale.ShowConfigValue))
	fmt.Fprintf(w, tableFormat, tableRule, tableRule, tableRule)

	for _, opt := range p.SortedOptions() {
		d := Describe(p, opt)
		ro := ""
		if d.ReadOnly {
			ro = "*"
		}

		switch d.Kind {
		case KindTagList:
			tags := p.DeclaredTags(opt.ID())
			if len(tags) == 0 {
				fmt.Fprintf(w, valueFormat, d.Name, d.Type, ro, "")
				continue
			}
			fmt.Fprintf(w, valueFormat, d.Name, d.Type, ro, tags[0])
			for _, tag := range tags[1:] {
				fmt.Fprintf(w, tableFormat, "", "", tag)
			}
			continue
		case KindEnum:
			if opt.ID() == tidy.Newline {
				d.Default = p.CurrentPick(tidy.Newline)
			}
		}
		fmt.Fprintf(w, valueFormat, d.Name, d.Type, ro, d.Default)
	}

	_, err := fmt.Fprint(w, loc.String(locale.ShowConfigFooter))
	return err
}

var contentCleaner = strings.NewReplacer(
	"<br/>", "\n\n",
	"<code>", "", "</code>", "",
	"<em>", "", "</em>", "",
	"<strong>", "", "</strong>", "",
	"<p>", "", "</p>", "",
)

var angleRestorer = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// PrepareContent turns option documentation into console text: line
// breaks become blank lines, inline tags are dropped and escaped angle
// brackets are restored.
func PrepareContent(doc string) string {
	return angleRestorer.Replace(contentCleaner.Replace(doc))
}

// DescribeOption writes the documentation of the option called name, or
// the unknown option message when there is no such option.
func DescribeOption(w io.Writer, p Processor, name string) error {
	var text string
	if opt, ok := p.OptionByName(name); ok {
		text = PrepareContent(p.OptionDoc(opt))
	} else {
		text = p.Localizer().String(locale.UnknownOptionName)
	}

	fmt.Fprintf(w, "\n`--%s`\n\n", name)
	if err := cli.WriteColumns(w, optionFormat, []int{68}, text); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

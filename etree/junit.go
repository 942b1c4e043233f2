// Package etree renders inventory reports as JUnit-style XML so CI systems
// can surface missing documentation files as test failures.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/fwojciec/doccheck"
)

// Ensure JUnitRenderer implements doccheck.Renderer at compile time.
var _ doccheck.Renderer = (*JUnitRenderer)(nil)

// JUnitRenderer writes one testsuite per catalog category and one testcase
// per catalogued path. Missing paths carry a <failure> element. The run ID
// and root directory are recorded as suite properties.
type JUnitRenderer struct{}

func (r *JUnitRenderer) Render(w io.Writer, report *doccheck.Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	s := report.Summary()
	suites := doc.CreateElement("testsuites")
	suites.CreateAttr("name", "doccheck")
	suites.CreateAttr("tests", strconv.Itoa(s.Total))
	suites.CreateAttr("failures", strconv.Itoa(s.Missing))

	for _, cat := range report.Categories {
		failures := 0
		for _, res := range cat.Results {
			if !res.Present {
				failures++
			}
		}

		suite := suites.CreateElement("testsuite")
		suite.CreateAttr("name", cat.Label)
		suite.CreateAttr("tests", strconv.Itoa(len(cat.Results)))
		suite.CreateAttr("failures", strconv.Itoa(failures))

		props := suite.CreateElement("properties")
		runID := props.CreateElement("property")
		runID.CreateAttr("name", "run_id")
		runID.CreateAttr("value", report.RunID)
		root := props.CreateElement("property")
		root.CreateAttr("name", "root")
		root.CreateAttr("value", report.Root)

		for _, res := range cat.Results {
			tc := suite.CreateElement("testcase")
			tc.CreateAttr("name", res.Path)
			tc.CreateAttr("classname", cat.Label)
			if !res.Present {
				f := tc.CreateElement("failure")
				f.CreateAttr("message", res.Path+" is missing")
				f.CreateAttr("type", "MissingPath")
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

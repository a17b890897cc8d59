package check

// Checker is implemented by single-result check types.
//
// Implementations:
//   - filecheck.Check: existence, non-empty, directory and executable checks
//   - workflowcheck.Check: workflow file structure
type Checker interface {
	Run() Result
}

// MultiChecker is implemented by checks that report one result per item,
// such as htmlcheck.Check with one result per required element.
type MultiChecker interface {
	Run() []Result
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// scenarioInstance is the 3-item reference instance in the standard format.
const scenarioInstance = "3 10\n10 5\n6 4\n8 6\n"

// CLISuite runs commands against files in a per-test directory.
type CLISuite struct {
	suite.Suite
	dir string
	out *bytes.Buffer
	cli *CLI
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.out = &bytes.Buffer{}
	s.cli = New(s.out, io.Discard, LogInfo)
}

// execute runs the root command with args.
func (s *CLISuite) execute(ctx context.Context, args ...string) error {
	root := s.cli.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	return root.ExecuteContext(ctx)
}

// writeFile stores content in the test directory and returns its path.
func (s *CLISuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestSolveJSON: the reference instance reports value 16 and items {0, 1}.
func (s *CLISuite) TestSolveJSON() {
	path := s.writeFile("small.txt", scenarioInstance)
	require.NoError(s.T(), s.execute(context.Background(), "solve", path, "--output", "json"))

	var r Report
	require.NoError(s.T(), json.Unmarshal(s.out.Bytes(), &r))
	require.Equal(s.T(), int64(16), r.Value)
	require.Equal(s.T(), int64(16), r.Bound)
	require.True(s.T(), r.Optimal)
	require.Equal(s.T(), []int{0, 1}, r.Solution)
	require.Equal(s.T(), AlgorithmPrimalDual, r.Algorithm)
}

// TestSolveYAMLWithBellman switches algorithm and format by flag.
func (s *CLISuite) TestSolveYAMLWithBellman() {
	path := s.writeFile("small.txt", scenarioInstance)
	require.NoError(s.T(), s.execute(context.Background(), "solve", path, "-a", "bellman", "-o", "yaml"))

	var r Report
	require.NoError(s.T(), yaml.Unmarshal(s.out.Bytes(), &r))
	require.Equal(s.T(), int64(16), r.Value)
	require.Equal(s.T(), AlgorithmBellman, r.Algorithm)
}

// TestSolveText prints the human-readable report.
func (s *CLISuite) TestSolveText() {
	path := s.writeFile("small.txt", scenarioInstance)
	require.NoError(s.T(), s.execute(context.Background(), "solve", path))
	require.Contains(s.T(), s.out.String(), "value:      16")
	require.Contains(s.T(), s.out.String(), "optimal:    true")
}

// TestSolveCertificate writes a certificate that reads back as the optimum.
func (s *CLISuite) TestSolveCertificate() {
	path := s.writeFile("small.txt", scenarioInstance)
	cert := filepath.Join(s.dir, "small.cert")
	require.NoError(s.T(), s.execute(context.Background(), "solve", path, "--certificate", cert))

	f, err := os.Open(path)
	require.NoError(s.T(), err)
	defer f.Close()
	inst, err := knapsack.ReadInstance(f, knapsack.FormatStandard)
	require.NoError(s.T(), err)

	cf, err := os.Open(cert)
	require.NoError(s.T(), err)
	defer cf.Close()
	sol, err := knapsack.ReadCertificate(cf, inst)
	require.NoError(s.T(), err)
	require.Equal(s.T(), knapsack.Profit(16), sol.Profit())
}

// TestConfigFileAndOverride: the file selects greedy, the flag overrides
// the output format.
func (s *CLISuite) TestConfigFileAndOverride() {
	path := s.writeFile("small.txt", scenarioInstance)
	cfg := s.writeFile("knapsolver.toml", `
[solver]
algorithm = "greedy"
partial_solution_size = 16
time_limit = "5s"

[output]
format = "yaml"
`)
	require.NoError(s.T(), s.execute(context.Background(), "solve", path, "--config", cfg, "-o", "json"))

	var r Report
	require.NoError(s.T(), json.Unmarshal(s.out.Bytes(), &r))
	require.Equal(s.T(), AlgorithmGreedy, r.Algorithm)
	require.Equal(s.T(), int64(16), r.Value)
}

// TestInvalidConfig rejects unknown keys and out-of-range values.
func (s *CLISuite) TestInvalidConfig() {
	path := s.writeFile("small.txt", scenarioInstance)

	unknown := s.writeFile("unknown.toml", "[solver]\nalgorithm = \"primal-dual\"\nwindow = 3\n")
	err := s.execute(context.Background(), "solve", path, "--config", unknown)
	require.ErrorIs(s.T(), err, ErrInvalidConfig)

	err = s.execute(context.Background(), "solve", path, "--partial-solution-size", "65")
	require.ErrorIs(s.T(), err, ErrInvalidConfig)

	err = s.execute(context.Background(), "solve", path, "--algorithm", "simplex")
	require.ErrorIs(s.T(), err, ErrInvalidConfig)

	err = s.execute(context.Background(), "solve", path, "--format", "csv")
	require.ErrorIs(s.T(), err, knapsack.ErrUnknownFormat)
}

// TestGenerateThenSolve round-trips a generated instance through a file.
func (s *CLISuite) TestGenerateThenSolve() {
	inst := filepath.Join(s.dir, "sc.txt")
	require.NoError(s.T(), s.execute(context.Background(),
		"generate", "--family", "sc", "-n", "50", "--seed", "3", "--max-weight", "100", "--out", inst))

	require.NoError(s.T(), s.execute(context.Background(), "solve", inst, "-o", "json"))
	var exact Report
	require.NoError(s.T(), json.Unmarshal(s.out.Bytes(), &exact))
	require.Equal(s.T(), 50, exact.Items)
	require.True(s.T(), exact.Optimal)

	s.out.Reset()
	require.NoError(s.T(), s.execute(context.Background(), "solve", inst, "-o", "json", "-a", "bellman"))
	var oracle Report
	require.NoError(s.T(), json.Unmarshal(s.out.Bytes(), &oracle))
	require.Equal(s.T(), oracle.Value, exact.Value)
}

// TestGenerateStdout writes the instance to the command output.
func (s *CLISuite) TestGenerateStdout() {
	require.NoError(s.T(), s.execute(context.Background(), "generate", "--family", "ties", "-n", "5"))
	inst, err := knapsack.ReadInstance(bytes.NewReader(s.out.Bytes()), knapsack.FormatStandard)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, inst.NumberOfItems())
}

// TestSolveCancelled still reports and surfaces the cancellation.
func (s *CLISuite) TestSolveCancelled() {
	path := s.writeFile("small.txt", scenarioInstance)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.execute(ctx, "solve", path, "-o", "json")
	require.True(s.T(), errors.Is(err, context.Canceled))
	var r Report
	require.NoError(s.T(), json.Unmarshal(s.out.Bytes(), &r))
	require.LessOrEqual(s.T(), r.Value, r.Bound)
}

// TestMissingInstance reports the path.
func (s *CLISuite) TestMissingInstance() {
	err := s.execute(context.Background(), "solve", filepath.Join(s.dir, "nope.txt"))
	require.Error(s.T(), err)
	require.ErrorIs(s.T(), err, os.ErrNotExist)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

// TestSetVersion updates the package-level build information.
func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	require.Equal(t, "1.0.0", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2026-01-01", date)
	SetVersion("", "", "")
}

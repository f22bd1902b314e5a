package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		quote rune
	}{
		{"double", `"/usr/lib/my-mpi/include"`, "/usr/lib/my-mpi/include", 0},
		{"single", `'/usr/lib/my-mpi/include'`, "/usr/lib/my-mpi/include", 0},
		{"backtick", "`/usr/lib/my-mpi/include`", "/usr/lib/my-mpi/include", 0},
		{"none", "/usr/lib/my-mpi/include", "/usr/lib/my-mpi/include", 0},
		{"short", "x", "x", 0},
		{"unclosed", `'/usr/lib/my-mpi/include`, "", '\''},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unquote(tt.in)
			if tt.quote != 0 {
				var uq *UnquoteError
				require.ErrorAs(t, err, &uq)
				assert.Equal(t, tt.quote, uq.Quote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectArgsWithSpaces(t *testing.T) {
	cmd := `gcc -I"/opt/intel/My Oneapi/mpi/2021.8.0/include" -L"/opt/intel/My Oneapi/mpi/2021.8.0/lib/release" ` +
		`-L"/opt/intel/My Oneapi/mpi/2021.8.0/lib" -Xlinker --enable-new-dtags -Xlinker -rpath ` +
		`-Xlinker "/opt/intel/My Oneapi/mpi/2021.8.0/lib/release" -lmpifort -lmpi -lrt -lpthread -Wl,-z,now -ldl`

	got, err := collectArgs(cmd, "-L")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/opt/intel/My Oneapi/mpi/2021.8.0/lib/release",
		"/opt/intel/My Oneapi/mpi/2021.8.0/lib",
	}, got)

	libs, err := collectArgs(cmd, "-l")
	require.NoError(t, err)
	assert.Equal(t, []string{"mpifort", "mpi", "rt", "pthread", "dl"}, libs)
}

func TestCollectArgsWithoutSpaces(t *testing.T) {
	cmd := "gcc -I/usr/lib/x86_64-linux-gnu/openmpi/include -I/usr/lib/x86_64-linux-gnu/openmpi/include/openmpi " +
		"-L/usr/lib/x86_64-linux-gnu/openmpi/lib -lmpi"

	includes, libPaths, libs, err := parseCompilerLine(cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/usr/lib/x86_64-linux-gnu/openmpi/include",
		"/usr/lib/x86_64-linux-gnu/openmpi/include/openmpi",
	}, includes)
	assert.Equal(t, []string{"/usr/lib/x86_64-linux-gnu/openmpi/lib"}, libPaths)
	assert.Equal(t, []string{"mpi"}, libs)
}

func TestCollectArgsUnbalancedShellQuote(t *testing.T) {
	_, err := collectArgs(`gcc -I"/opt/mpi/include`, "-I")
	require.Error(t, err)
}

package cmd

import "os"

// exitFunc allows tests to stub process exit behavior. Production code
// leaves this pointing at os.Exit, while tests replace it to capture exit
// codes without terminating the test binary.
var exitFunc = os.Exit

package cmd

// runner abstracts the command transport of one host so node and cluster
// logic can be exercised without SSH connectivity.
type runner interface {
	Connect() error
	Run(command string, elevate bool) (commandResult, error)
	Disconnect()
	Host() string
}

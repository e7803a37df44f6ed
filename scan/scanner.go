package scan

type Scanner interface {
	Scan(host Host, ports PortSet) (Summary, error)
}

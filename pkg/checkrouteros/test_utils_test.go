package checkrouteros

// fakeDevice serves canned api responses for probe tests.
type fakeDevice struct {
	queryRows map[string][]map[string]string
	cmdRows   map[string][]map[string]string
	err       error
	closed    bool

	lastProps []string
	lastWhere map[string]string
	lastArgs  map[string]string
}

func (d *fakeDevice) Query(path string, props []string, where map[string]string) ([]map[string]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.lastProps = props
	d.lastWhere = where

	return d.queryRows[path], nil
}

func (d *fakeDevice) Command(cmd string, args map[string]string) ([]map[string]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.lastArgs = args

	return d.cmdRows[cmd], nil
}

func (d *fakeDevice) Close() error {
	d.closed = true

	return nil
}

func fakeDialer(device Device) Dialer {
	return func() (Device, error) {
		return device, nil
	}
}

func failingDialer(err error) Dialer {
	return func() (Device, error) {
		return nil, err
	}
}

package remote_signer

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "remote-signer")

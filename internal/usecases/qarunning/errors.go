package qarunning

import "errors"

// ErrStorageDisabled indica que o serviço foi criado sem repositório
var ErrStorageDisabled = errors.New("qa run storage is disabled")

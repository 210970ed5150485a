package genepred

var Write = write

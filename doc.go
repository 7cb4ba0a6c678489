/*
Package sdb implements an embedded, file-backed key-value store. A
database file holds named tables of unique keys; the full state lives
in memory for the lifetime of a handle and is written back to disk as
one serialized, optionally compressed image.

Data Structure Documentation

File

A database file is a fixed header followed by the compressed image.

	File layout:
	+---------------------------+-------------------------+-----------------------------+
	| compressed size (8 bytes) | original size (8 bytes) | compressed image (variable) |
	+---------------------------+-------------------------+-----------------------------+

Both size fields are little-endian. The original size is the length of
the image before compression and is verified on open; a mismatch marks
the file as corrupted and the database starts empty.

Image

The image is the serialized table graph, tables and entries in
insertion order.

	Image layout:
	+-----------------------+---------+-------+---------+
	| table count (4 bytes) | table 1 |  ...  | table n |
	+-----------------------+---------+-------+---------+

	Table:
	+-----------------------+---------------+-----------------------+---------+-------+---------+
	| name length (4 bytes) | name (varlen) | entry count (4 bytes) | entry 1 |  ...  | entry n |
	+-----------------------+---------------+-----------------------+---------+-------+---------+

	Entry:
	+----------------------+------------------------+--------------+----------------+
	| key length (4 bytes) | value length (4 bytes) | key (varlen) | value (varlen) |
	+----------------------+------------------------+--------------+----------------+

Compression

Four codecs can be applied to the image: none, run-length, an
LZ77-style windowed-match codec and snappy. Run-length encodes maximal
runs of identical bytes as (count, value) pairs with runs capped at
255. Windowed-match emits either a literal token [0, byte] or a match
token [1, offsetLow, offsetHigh, length] referencing up to 1024 bytes
back into the already decoded output; matches shorter than 3 bytes are
emitted as literals.
*/
package sdb
